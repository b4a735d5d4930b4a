package main

import (
	"log"
	"os"

	"github.com/go-apibox/response"
)

func main() {
	cfg := `
# config of application
app:
  name: myapi
  http_addr: :8080
api:
  default:
    format: json
  allow_formats:
    - json
    - jsonp
    - raw
`
	app, err := response.NewAppFromYaml(cfg)
	if err != nil {
		log.Println(err.Error())
		os.Exit(1)
	}
	app.Run([]*response.Route{
		response.NewRoute("Test.Ok", testOkAction),
		response.NewRoute("Test.Error", testErrorAction),
		response.NewRoute("Test.NotFound", testNotFoundAction),
		response.NewRoute("Test.Raw", testRawAction),
	})
}

func testOkAction(c *response.Context) (data interface{}) {
	return map[string]string{"foo": "bar"}
}

func testErrorAction(c *response.Context) (data interface{}) {
	return c.Error.New(response.ErrorInvalidParam, "Password", "TooShort")
}

// 直接通过builder输出404，跳过统一的结果封装
func testNotFoundAction(c *response.Context) (data interface{}) {
	b := c.Builder()
	if err := b.JSON(map[string]int{"x": 1}, 404, "Not Found"); err != nil {
		return c.Error.New(response.ErrorOperationFailed, "SendResponse")
	}
	return nil
}

func testRawAction(c *response.Context) (data interface{}) {
	b := c.Builder()
	b.SetFormat("raw").SetData("hello")
	b.Send()
	return nil
}
