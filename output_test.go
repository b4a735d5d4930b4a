package response

import (
	"net/http/httptest"
	"testing"
)

func TestOutputBuffersUntilFlush(t *testing.T) {
	rec := httptest.NewRecorder()
	o := NewOutput(rec)

	o.SetContentType("text/html; charset=utf-8")
	o.SetStatusHeader(201, "Created")
	o.SetOutputBody("<b>hi</b>")

	// Flush之前不应有任何输出
	if rec.Body.Len() != 0 {
		t.Fatalf("body written before Flush: %q", rec.Body.String())
	}
	if got := o.GetOutputBody(); got != "<b>hi</b>" {
		t.Errorf("GetOutputBody() = %q", got)
	}

	if err := o.Flush(); err != nil {
		t.Fatal(err)
	}
	if rec.Code != 201 {
		t.Errorf("status = %d, want 201", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("Content-Type = %q", ct)
	}
	if rec.Body.String() != "<b>hi</b>" {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestOutputSetBodyOverwrites(t *testing.T) {
	o := NewOutput(httptest.NewRecorder())
	o.SetOutputBody("one")
	o.SetOutputBody("two")
	if got := o.GetOutputBody(); got != "two" {
		t.Errorf("GetOutputBody() = %q, want %q", got, "two")
	}
}

func TestOutputWriteAppends(t *testing.T) {
	o := NewOutput(httptest.NewRecorder())
	o.SetOutputBody("a")
	o.Write([]byte("b"))
	if got := o.GetOutputBody(); got != "ab" {
		t.Errorf("GetOutputBody() = %q, want %q", got, "ab")
	}
}

func TestOutputStatusHeader(t *testing.T) {
	o := NewOutput(httptest.NewRecorder())
	o.SetStatusHeader(404, "Not Found")
	code, text := o.GetStatusHeader()
	if code != 404 || text != "Not Found" {
		t.Errorf("GetStatusHeader() = (%d, %q)", code, text)
	}
}

func TestOutputDefaultStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	o := NewOutput(rec)
	o.SetOutputBody("x")
	if err := o.Flush(); err != nil {
		t.Fatal(err)
	}
	// 未设置状态码时由net/http默认输出200
	if rec.Code != 200 {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
