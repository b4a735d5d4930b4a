package response

import (
	"net/http/httptest"
	"testing"
)

func newTestBuilder() (*Builder, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	return NewBuilder(NewOutput(rec)), rec
}

func TestSetStatusCodeValid(t *testing.T) {
	for _, code := range []int{100, 101, 200, 204, 301, 404, 500, 599} {
		b, _ := newTestBuilder()
		if err := b.SetStatusCode(code); err != nil {
			t.Fatalf("SetStatusCode(%d) failed: %v", code, err)
		}
		if b.GetStatusCode() != code {
			t.Errorf("GetStatusCode() = %d, want %d", b.GetStatusCode(), code)
		}
	}
}

func TestSetStatusCodeInvalid(t *testing.T) {
	b, _ := newTestBuilder()
	if err := b.SetStatusCode(404); err != nil {
		t.Fatal(err)
	}

	for _, code := range []int{-1, 1, 99, 600, 601, 1000} {
		err := b.SetStatusCode(code)
		if err == nil {
			t.Fatalf("SetStatusCode(%d) should fail", code)
		}
		if !IsInvalidStatusCode(err) {
			t.Errorf("SetStatusCode(%d) error = %v, want InvalidStatusCode", code, err)
		}
		// 无效状态码不改变已存储的值
		if b.GetStatusCode() != 404 {
			t.Errorf("GetStatusCode() = %d after invalid set, want 404", b.GetStatusCode())
		}
	}
}

func TestSetStatusCodeZeroDefaultsTo200(t *testing.T) {
	b, _ := newTestBuilder()
	if err := b.SetStatusCode(0); err != nil {
		t.Fatal(err)
	}
	if b.GetStatusCode() != 200 {
		t.Errorf("GetStatusCode() = %d, want 200", b.GetStatusCode())
	}
}

func TestSetStatusCodeReasonPhrase(t *testing.T) {
	rec := httptest.NewRecorder()
	out := NewOutput(rec)
	b := NewBuilder(out)
	if err := b.SetStatusCode(404, "Not Found"); err != nil {
		t.Fatal(err)
	}
	code, text := out.GetStatusHeader()
	if code != 404 || text != "Not Found" {
		t.Errorf("GetStatusHeader() = (%d, %q), want (404, \"Not Found\")", code, text)
	}
}

func TestIsInvalid(t *testing.T) {
	b, _ := newTestBuilder()
	if b.IsInvalid() {
		t.Error("IsInvalid() = true on fresh builder")
	}
	b.SetStatusCode(599)
	if b.IsInvalid() {
		t.Error("IsInvalid() = true after valid status code")
	}
}

func TestJSONFormatBody(t *testing.T) {
	rec := httptest.NewRecorder()
	b := NewBuilder(NewOutput(rec))
	b.SetFormat("json").SetData(map[string]string{"foo": "bar"})

	if got := b.GetOutput(); got != `{"foo":"bar"}` {
		t.Errorf("GetOutput() = %q, want %q", got, `{"foo":"bar"}`)
	}

	if err := b.Send(); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json;" {
		t.Errorf("Content-Type = %q, want %q", ct, "application/json;")
	}
	if rec.Body.String() != `{"foo":"bar"}` {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRawStringPassthrough(t *testing.T) {
	rec := httptest.NewRecorder()
	b := NewBuilder(NewOutput(rec))
	b.SetFormat("raw").SetData("hello")

	if got := b.GetOutput(); got != "hello" {
		t.Errorf("GetOutput() = %q, want %q", got, "hello")
	}

	if err := b.Send(); err != nil {
		t.Fatal(err)
	}
	// raw格式无默认content type
	if ct := rec.Header().Get("Content-Type"); ct != "" {
		t.Errorf("Content-Type = %q, want empty", ct)
	}
	if rec.Body.String() != "hello" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRawBytesPassthrough(t *testing.T) {
	b, _ := newTestBuilder()
	b.SetFormat("raw").SetData([]byte("hello"))
	if got := b.GetOutput(); got != "hello" {
		t.Errorf("GetOutput() = %q, want %q", got, "hello")
	}
}

func TestCompositeFallbackToJSON(t *testing.T) {
	// raw格式没有formatter，复合数据退化为JSON输出
	b, _ := newTestBuilder()
	b.SetFormat("raw").SetData(map[string]int{"a": 1})
	if got := b.GetOutput(); got != `{"a":1}` {
		t.Errorf("GetOutput() = %q, want %q", got, `{"a":1}`)
	}

	type point struct {
		X int `json:"x"`
		Y int `json:"y"`
	}
	b2, _ := newTestBuilder()
	b2.SetFormat("html").SetData(point{1, 2})
	if got := b2.GetOutput(); got != `{"x":1,"y":2}` {
		t.Errorf("GetOutput() = %q, want %q", got, `{"x":1,"y":2}`)
	}
}

func TestScalarPassthroughOnUnknownFormat(t *testing.T) {
	b, _ := newTestBuilder()
	b.SetFormat("whatever").SetData(42)
	if got := b.GetOutput(); got != "42" {
		t.Errorf("GetOutput() = %q, want %q", got, "42")
	}
}

func TestJSONConvenience(t *testing.T) {
	rec := httptest.NewRecorder()
	b := NewBuilder(NewOutput(rec))
	if err := b.JSON(map[string]int{"x": 1}, 404, "Not Found"); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 404 {
		t.Errorf("status = %d, want 404", rec.Code)
	}
	if rec.Body.String() != `{"x":1}` {
		t.Errorf("body = %q, want %q", rec.Body.String(), `{"x":1}`)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json;" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestJSONConvenienceInvalidStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	b := NewBuilder(NewOutput(rec))
	err := b.JSON(map[string]int{"x": 1}, 99, "")
	if err == nil || !IsInvalidStatusCode(err) {
		t.Fatalf("JSON with status 99 should fail with InvalidStatusCode, got %v", err)
	}
	// 发送前失败，未产生任何输出
	if rec.Body.Len() != 0 {
		t.Errorf("body should be empty, got %q", rec.Body.String())
	}
}

func TestSendTwice(t *testing.T) {
	b, _ := newTestBuilder()
	b.SetData("x")
	if err := b.Send(); err != nil {
		t.Fatal(err)
	}
	if err := b.Send(); err == nil {
		t.Fatal("second Send should fail")
	}
}

func TestRegisterFormatter(t *testing.T) {
	rec := httptest.NewRecorder()
	b := NewBuilder(NewOutput(rec))
	b.SetContentType("xml", "application/xml; charset=utf-8")
	b.RegisterFormatter("xml", func(data interface{}) string {
		return "<v>" + data.(string) + "</v>"
	})
	b.SetFormat("xml").SetData("hi")

	if got := b.GetOutput(); got != "<v>hi</v>" {
		t.Errorf("GetOutput() = %q", got)
	}
	if err := b.Send(); err != nil {
		t.Fatal(err)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/xml; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
}

func TestSetDataOverwrites(t *testing.T) {
	b, _ := newTestBuilder()
	b.SetFormat("raw").SetData("first").SetData("second")
	if got := b.GetOutput(); got != "second" {
		t.Errorf("GetOutput() = %q, want %q", got, "second")
	}
}
