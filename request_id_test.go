package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestRequestIdMakerGenerates(t *testing.T) {
	m := NewRequestIdMaker()

	r := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, r, func(w http.ResponseWriter, r *http.Request) {})

	if rec.Header().Get("X-Request-Id") == "" {
		t.Error("X-Request-Id header not set")
	}
}

func TestRequestIdMakerEchoesInboundId(t *testing.T) {
	m := NewRequestIdMaker()

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("X-Request-Id", "upstream-id")
	rec := httptest.NewRecorder()
	m.ServeHTTP(rec, r, func(w http.ResponseWriter, r *http.Request) {})

	if got := rec.Header().Get("X-Request-Id"); got != "upstream-id" {
		t.Errorf("X-Request-Id = %q, want %q", got, "upstream-id")
	}
}
