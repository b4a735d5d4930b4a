// 响应构建模块

package response

import (
	"fmt"
	"reflect"

	"github.com/fatih/structs"
)

// DefaultFormat is the output format used when none is specified.
const DefaultFormat = "json"

// Builder collects the status code, output format and body of one
// response, then hands them to the bound sink. A builder belongs to
// a single request and is consumed by Send.
type Builder struct {
	out Sink
	ctx *Context // Context()构建时非空，Send时用于关闭响应

	format       string
	statusCode   int
	statusText   string
	contentTypes map[string]string
	formatters   map[string]FormatterFunc
	body         string
	sent         bool
}

// NewBuilder return a builder bound to the specified sink.
// Recognized formats are raw, html, json, jsonp and xml; only json
// has a built-in formatter and a default content type.
func NewBuilder(out Sink) *Builder {
	return &Builder{
		out:        out,
		format:     DefaultFormat,
		statusCode: 200,
		contentTypes: map[string]string{
			"json": "application/json;",
		},
		formatters: map[string]FormatterFunc{
			"json": JSONFormat,
		},
	}
}

// SetFormat store the output format. If a content type is registered
// for the format, it is pushed to the sink immediately. The format
// itself is not validated: an unknown format is accepted silently and
// will fall through to the composite fallback in SetData.
func (b *Builder) SetFormat(format string) *Builder {
	b.format = format
	if mime, has := b.contentTypes[format]; has {
		b.out.SetContentType(mime)
	}
	return b
}

// GetFormat return the stored output format.
func (b *Builder) GetFormat() string {
	return b.format
}

// SetContentType register the content type of the specified format.
// It takes effect on later SetFormat calls.
func (b *Builder) SetContentType(format, mime string) *Builder {
	b.contentTypes[format] = mime
	return b
}

// RegisterFormatter register a formatter for the specified format.
func (b *Builder) RegisterFormatter(format string, formatter FormatterFunc) *Builder {
	b.formatters[format] = formatter
	return b
}

// SetData serialize data according to the current format and push the
// result into the sink's output buffer. A registered formatter wins;
// without one, composite data degrades to JSON text whatever the
// declared format is, and scalar data is stored unchanged.
func (b *Builder) SetData(data interface{}) *Builder {
	if formatter, has := b.formatters[b.format]; has {
		b.body = formatter(data)
	} else if isComposite(data) {
		b.body = JSONFormat(data)
	} else {
		b.body = stringify(data)
	}
	b.out.SetOutputBody(b.body)
	return b
}

// GetOutput return the currently buffered output body of the sink.
func (b *Builder) GetOutput() string {
	return b.out.GetOutputBody()
}

// GetStatusCode return the stored status code.
func (b *Builder) GetStatusCode() int {
	return b.statusCode
}

// SetStatusCode validate and store the status code, then push it to
// the sink's status header. Code 0 is treated as 200. Optional text
// is the reason phrase; if omitted, a standard phrase is used.
// A code outside [100, 600) is rejected with an InvalidStatusCode
// error and leaves both the stored code and the sink untouched.
func (b *Builder) SetStatusCode(code int, text ...string) error {
	if code == 0 {
		code = 200
	}
	if code < 100 || code >= 600 {
		return errManager.New(ErrorInvalidStatusCode).
			SetData(map[string]interface{}{"StatusCode": code})
	}
	b.statusCode = code
	if len(text) > 0 {
		b.statusText = text[0]
	} else {
		b.statusText = ""
	}
	b.out.SetStatusHeader(b.statusCode, b.statusText)
	return nil
}

// IsInvalid report whether the stored status code is outside the
// valid range [100, 600).
func (b *Builder) IsInvalid() bool {
	return b.statusCode < 100 || b.statusCode >= 600
}

// Send flush all buffered headers and body to the transport and close
// the response. The builder is consumed: no output operation after
// Send takes effect. When the builder was created from a Context, the
// request is marked closed so the surrounding handler skips any
// further output.
func (b *Builder) Send() error {
	if b.sent {
		return errManager.New(ErrorResponseSent)
	}
	b.sent = true
	if b.ctx != nil {
		b.ctx.CloseResponse()
	}
	return b.out.Flush()
}

// JSON is a shortcut of SetStatusCode, SetFormat("json"), SetData and
// Send. A statusCode of 0 leaves the current status untouched.
func (b *Builder) JSON(data interface{}, statusCode int, statusText string) error {
	if statusCode != 0 {
		var err error
		if statusText != "" {
			err = b.SetStatusCode(statusCode, statusText)
		} else {
			err = b.SetStatusCode(statusCode)
		}
		if err != nil {
			return err
		}
	}
	b.SetFormat("json").SetData(data)
	return b.Send()
}

// 复合数据：map、slice、array或struct
// 二进制串按标量处理，原样输出
func isComposite(data interface{}) bool {
	if data == nil {
		return false
	}
	if _, ok := data.([]byte); ok {
		return false
	}
	if structs.IsStruct(data) {
		return true
	}
	switch reflect.ValueOf(data).Kind() {
	case reflect.Map, reflect.Slice, reflect.Array:
		return true
	}
	return false
}

func stringify(data interface{}) string {
	switch v := data.(type) {
	case nil:
		return ""
	case string:
		return v
	case []byte:
		return string(v)
	}
	return fmt.Sprint(data)
}
