// 运行环境模块

package response

import (
	"net/http"
	"strings"

	"github.com/gorilla/context"
	"github.com/gorilla/websocket"
)

type Context struct {
	App    *App
	Input  *Input
	Output *Output
	Error  *ErrorManager
}

// 修复HTTP头部中的Content-Type
// 部分客户端会发送如下头部：
// Content-Type: application/x-www-form-urlencoded; text/html; charset=utf-8
// 会造成ParseForm()报错：mime: invalid media parameter
func fixHeader(h http.Header) {
	if ct, has := h["Content-Type"]; has && len(ct) > 0 {
		fields := strings.Split(ct[0], ";")
		okFields := []string{}
		if len(fields) > 1 {
			okFields = append(okFields, fields[0])
			for _, field := range fields[1:] {
				// 必须带有=，而且不能包含/
				if strings.IndexByte(field, '=') < 0 {
					continue
				}
				if strings.IndexByte(field, '/') >= 0 {
					continue
				}
				okFields = append(okFields, field)
			}
			h["Content-Type"][0] = strings.Join(okFields, ";")
		}
	}
}

func NewContext(app *App, w http.ResponseWriter, r *http.Request) (*Context, error) {
	fixHeader(r.Header)

	if err := r.ParseForm(); err != nil {
		return nil, err
	}

	input := &Input{r}
	apiLang := input.Get("api_lang")
	if apiLang != "" {
		app.Error.SetLang(apiLang)
	} else {
		// 重置为应用默认配置
		app.Error.SetLang(app.Config.GetDefaultString("api.default.lang", "en_us"))
	}

	return &Context{app, input, NewOutput(w), app.Error}, nil
}

// Request return current request.
func (c *Context) Request() *http.Request {
	return c.Input.Request
}

// Response return current response writer.
func (c *Context) Response() http.ResponseWriter {
	return c.Output.ResponseWriter
}

// Builder return a response builder bound to the output of current
// request. Content types and formatters configured on the app are
// carried over, so the builder honors api.content_types config.
func (c *Context) Builder() *Builder {
	b := NewBuilder(c.Output)
	b.ctx = c
	for format, mime := range c.App.contentTypes {
		b.SetContentType(format, mime)
	}
	for format, formatter := range c.App.formatters {
		b.RegisterFormatter(format, formatter)
	}
	return b
}

// Set stores a value for a given key in a given request.
func (c *Context) Set(key, val interface{}) {
	context.Set(c.Input.Request, key, val)
}

// Delete removes a value stored for a given key in a given request.
func (c *Context) Delete(key interface{}) {
	context.Delete(c.Input.Request, key)
}

// Get returns a value stored for a given key in a given request.
func (c *Context) Get(key interface{}) interface{} {
	return context.Get(c.Input.Request, key)
}

// GetOk returns stored value and presence state like multi-value return of map access.
func (c *Context) GetOk(key interface{}) (interface{}, bool) {
	return context.GetOk(c.Input.Request, key)
}

// GetString returns a string value stored for a given key in a given request.
func (c *Context) GetString(key interface{}) string {
	v, has := context.GetOk(c.Input.Request, key)
	if !has {
		return ""
	}
	str, ok := v.(string)
	if !ok {
		return ""
	}
	return str
}

// GetInt returns an int value stored for a given key in a given request.
func (c *Context) GetInt(key interface{}) int {
	v, has := context.GetOk(c.Input.Request, key)
	if !has {
		return 0
	}
	n, ok := v.(int)
	if !ok {
		return 0
	}
	return n
}

// Clear removes all values stored for a given request.
// This is usually called by a handler wrapper to clean up request variables at the end of a request lifetime. See ClearHandler().
func (c *Context) Clear() {
	context.Clear(c.Input.Request)
}

// CloseResponse ignore the action return value and will not response anymore when action return.
func (c *Context) CloseResponse() {
	c.Set("response_closed", true)
}

// ResponseClosed report whether the response of current request has
// been closed by CloseResponse or Builder.Send.
func (c *Context) ResponseClosed() bool {
	closed, ok := c.Get("response_closed").(bool)
	return ok && closed
}

// UpgradeWebsocket upgrade current request to websocket, and return the websocket connection.
func (c *Context) UpgradeWebsocket() (*websocket.Conn, error) {
	c.CloseResponse()

	upgrader := websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     func(r *http.Request) bool { return true },
	}

	conn, err := upgrader.Upgrade(c.Output.ResponseWriter, c.Input.Request, nil)
	if err != nil {
		// 不能再输出HTTP错误，否则会报：
		// http: response.WriteHeader on hijacked connection
		return nil, err
	}
	return conn, nil
}
