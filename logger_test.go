package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/urfave/negroni"
)

func TestClientAddr(t *testing.T) {
	tests := []struct {
		remoteAddr string
		realIp     string
		want       string
	}{
		{"192.168.1.10:1234", "", "192.168.1.10:1234"},
		{"192.168.1.10:1234", "10.0.0.1", "10.0.0.1"},
		{"@", "", ""},
		{"@", "10.0.0.1", "10.0.0.1"},
	}
	for _, tt := range tests {
		r := httptest.NewRequest("GET", "/", nil)
		r.RemoteAddr = tt.remoteAddr
		if tt.realIp != "" {
			r.Header.Set("X-Real-IP", tt.realIp)
		}
		if got := clientAddr(r); got != tt.want {
			t.Errorf("clientAddr(remote=%q, realIp=%q) = %q, want %q",
				tt.remoteAddr, tt.realIp, got, tt.want)
		}
	}
}

func TestLoggerServeHTTP(t *testing.T) {
	l := NewLogger("test")
	l.SetWhiteList([]string{"*"})
	l.SetBlackList([]string{})

	called := false
	next := func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusOK)
	}

	r := httptest.NewRequest("GET", "/?api_action=Echo", nil)
	r.Header.Set("X-Real-IP", "10.0.0.1")
	rw := negroni.NewResponseWriter(httptest.NewRecorder())
	l.ServeHTTP(rw, r, next)

	if !called {
		t.Error("next handler not called")
	}
	if rw.Status() != http.StatusOK {
		t.Errorf("status = %d, want %d", rw.Status(), http.StatusOK)
	}
}
