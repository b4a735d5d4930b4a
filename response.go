// 输出模块

package response

import (
	"net/http"
	"os"
)

type Result struct {
	ACTION  string
	CODE    string
	MESSAGE string
	DATA    interface{}
}

type SuccessResult struct {
	ACTION string
	CODE   string
	DATA   interface{}
}

type ErrorResult struct {
	ACTION  string
	CODE    string
	MESSAGE string
}

type ErrorResultWithData struct {
	ACTION  string
	CODE    string
	MESSAGE string
	DATA    interface{}
}

var debugLevel string

func init() {
	switch os.Getenv("DEBUG_LEVEL") {
	case "full":
		debugLevel = "full"
	case "code":
		debugLevel = "code"
	}
}

// WriteResponse format api result according to the format specified by request params.
// The format is negotiated against api.allow_formats config; a format
// not in the list falls back to the first allowed one.
func WriteResponse(c *Context, data interface{}) {
	if c.ResponseClosed() {
		return
	}

	c.Output.SetHeader("Server", c.App.ServerName)

	defaultFormat := c.App.Config.GetDefaultString("api.default.format", "json")
	defaultCallback := c.App.Config.GetDefaultString("api.default.callback", "callback")
	var defaultDebug string
	if c.App.Config.GetDefaultBool("api.default.debug", false) {
		defaultDebug = "1"
	} else {
		defaultDebug = "0"
	}

	// 根据请求参数中的配置值格式化Api输出
	apiAction := c.Input.GetAction()
	apiFormat := c.Input.GetFormat(defaultFormat)
	apiCallback := c.Input.GetCallback(defaultCallback)
	apiDebug := c.Input.GetDefault("api_debug", defaultDebug)
	allowFormats := c.App.Config.GetDefaultStringArray("api.allow_formats", []string{})
	if len(allowFormats) == 0 {
		apiFormat = "json"
	} else if !strSliceContains(allowFormats, apiFormat) {
		apiFormat = allowFormats[0]
	}

	c.Set("returnData", data)

	apiData := makeData(apiAction, data)
	result := makeResult(apiData)
	jsonBeauty := apiDebug == "1"

	switch debugLevel {
	case "full":
		c.App.Logger.Debug("\n"+
			">>>>>>>>>>>>>>>>>>>>> DEBUG >>>>>>>>>>>>>>>>>>>>\n"+
			"%s\n>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>>", JSONIndentFormat(result))
	case "code":
		c.App.Logger.Debug("DEBUG: %s", apiData.CODE)
	}

	b := c.Builder()
	jsonFmt := JSONFormat
	if jsonBeauty {
		jsonFmt = JSONIndentFormat
		b.RegisterFormatter("json", JSONIndentFormat)
	}
	if apiFormat == "jsonp" {
		b.RegisterFormatter("jsonp", JSONPFormatter(apiCallback, jsonFmt))
	}
	b.SetFormat(apiFormat).SetData(result)
	b.Send()
}

// WriteData format data and write it to the specified response writer
// directly, without an App context.
func WriteData(w http.ResponseWriter, r *http.Request, data interface{},
	apiAction string, apiFormat string, apiCallback string, apiDebug string) {
	apiData := makeData(apiAction, data)
	result := makeResult(apiData)

	b := NewBuilder(NewOutput(w))
	b.SetContentType("json", "application/json; charset=utf-8")
	b.SetContentType("jsonp", "application/javascript; charset=utf-8")
	jsonFmt := JSONFormat
	if apiDebug == "1" {
		jsonFmt = JSONIndentFormat
		b.RegisterFormatter("json", JSONIndentFormat)
	}
	if apiFormat == "jsonp" {
		b.RegisterFormatter("jsonp", JSONPFormatter(apiCallback, jsonFmt))
	}
	b.SetFormat(apiFormat).SetData(result)
	b.Send()
}

func makeData(action string, data interface{}) *Result {
	switch err := data.(type) {
	case *Error:
		resData := &Result{
			ACTION:  action,
			CODE:    err.Code,
			MESSAGE: err.Message,
			DATA:    nil,
		}
		if err.Data != nil {
			resData.DATA = err.Data
		}
		return resData
	default:
		resData := &Result{
			ACTION: action,
			CODE:   "ok",
			DATA:   data,
		}
		return resData
	}
}

// 根据CODE选择输出的结果结构
func makeResult(apiData *Result) interface{} {
	if apiData.CODE == "ok" {
		return &SuccessResult{
			ACTION: apiData.ACTION,
			CODE:   apiData.CODE,
			DATA:   apiData.DATA,
		}
	}
	if apiData.DATA == nil {
		return &ErrorResult{
			ACTION:  apiData.ACTION,
			CODE:    apiData.CODE,
			MESSAGE: apiData.MESSAGE,
		}
	}
	return &ErrorResultWithData{
		ACTION:  apiData.ACTION,
		CODE:    apiData.CODE,
		MESSAGE: apiData.MESSAGE,
		DATA:    apiData.DATA,
	}
}
