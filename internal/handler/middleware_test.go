package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestSecurityHeaders_SetsAllHeaders(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	headers := map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Referrer-Policy":        "strict-origin-when-cross-origin",
		"X-XSS-Protection":       "0",
		"Permissions-Policy":     "camera=(), microphone=(), geolocation=()",
	}
	for name, want := range headers {
		got := rec.Header().Get(name)
		if got != want {
			t.Errorf("%s: want %q, got %q", name, want, got)
		}
	}
}

func TestSecurityHeaders_CSP(t *testing.T) {
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	for _, d := range []string{"default-src 'none'", "frame-ancestors 'none'"} {
		if !strings.Contains(csp, d) {
			t.Errorf("CSP missing directive %q: %s", d, csp)
		}
	}
}

func TestSecurityHeaders_PassesThrough(t *testing.T) {
	called := false
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		w.WriteHeader(http.StatusTeapot)
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	SecurityHeaders(inner).ServeHTTP(rec, req)

	if !called {
		t.Error("inner handler was not called")
	}
	if rec.Code != http.StatusTeapot {
		t.Errorf("expected 418, got %d", rec.Code)
	}
}

func TestRequestID_GeneratesID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	if seen == "" {
		t.Fatal("expected a request id in the context")
	}
	if got := rec.Header().Get(RequestIDHeader); got != seen {
		t.Errorf("response header %q does not match context id %q", got, seen)
	}
	if len(seen) != 36 {
		t.Errorf("expected a UUID, got %q", seen)
	}
}

func TestRequestID_ReusesClientID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, "trace-abc")
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	if seen != "trace-abc" {
		t.Errorf("expected client id to be reused, got %q", seen)
	}
	if got := rec.Header().Get(RequestIDHeader); got != "trace-abc" {
		t.Errorf("expected echoed id trace-abc, got %q", got)
	}
}

func TestRequestID_ReplacesOversizedID(t *testing.T) {
	var seen string
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = RequestIDFromContext(r.Context())
	})

	long := strings.Repeat("x", maxRequestIDLength+1)
	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set(RequestIDHeader, long)
	rec := httptest.NewRecorder()
	RequestID(inner).ServeHTTP(rec, req)

	if seen == long || seen == "" {
		t.Errorf("expected a generated id, got %q", seen)
	}
}

func TestRequestIDFromContext_Missing(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if id := RequestIDFromContext(req.Context()); id != "" {
		t.Errorf("expected empty id, got %q", id)
	}
}
