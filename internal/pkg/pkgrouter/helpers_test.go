package pkgrouter

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"strings"
	"testing"
)

func TestNormalizeCID(t *testing.T) {
	if got := normalizeCID("  abc  "); got != "abc" {
		t.Fatalf("expected trimmed value, got %q", got)
	}
	if got := normalizeCID("\n"); got != "" {
		t.Fatalf("expected empty for newline, got %q", got)
	}
	if got := normalizeCID("a b"); got != "" {
		t.Fatalf("expected empty for inner space, got %q", got)
	}
	if got := normalizeCID("cid-é"); got != "" {
		t.Fatalf("expected empty for non-ascii, got %q", got)
	}
	if got := normalizeCID(strings.Repeat("a", maxCIDLen)); len(got) != maxCIDLen {
		t.Fatalf("expected length %d, got %d", maxCIDLen, len(got))
	}
	if got := normalizeCID(strings.Repeat("a", 200)); got != "" {
		t.Fatalf("expected empty for oversized id, got %q", got)
	}
}

func TestMaskHeaders(t *testing.T) {
	headers := http.Header{}
	headers.Set("Authorization", "secret")
	headers.Set("X-Trace", "ok")

	masked := maskHeaders(headers)
	if got := masked.Get("Authorization"); got != "***" {
		t.Fatalf("expected masked authorization, got %q", got)
	}
	if got := masked.Get("X-Trace"); got != "ok" {
		t.Fatalf("expected X-Trace to stay, got %q", got)
	}
	if got := headers.Get("Authorization"); got != "secret" {
		t.Fatalf("expected original headers unchanged, got %q", got)
	}
}

func TestMaskQuery(t *testing.T) {
	if got := maskQuery(url.Values{}); got != nil {
		t.Fatalf("expected nil for empty query, got %#v", got)
	}

	values, err := url.ParseQuery("count=5&token=abc&at=2024-01-01T00:00:00Z&tag=a&tag=b")
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}

	want := map[string]any{
		"count": "5",
		"token": "***",
		"at":    "2024-01-01T00:00:00Z",
		"tag":   []string{"a", "b"},
	}
	if got := maskQuery(values); !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected masked query: %#v", got)
	}
}

func TestStatusRecorderDefaultsToOK(t *testing.T) {
	rec := &statusRecorder{ResponseWriter: httptest.NewRecorder()}
	if _, err := rec.Write([]byte("hello")); err != nil {
		t.Fatalf("write: %v", err)
	}
	if rec.status != http.StatusOK || rec.bytes != 5 {
		t.Fatalf("unexpected recorder state: status=%d bytes=%d", rec.status, rec.bytes)
	}
}

func TestMiddlewareLoggingPassesThrough(t *testing.T) {
	h := middlewareLogging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	}))

	req := httptest.NewRequest(http.MethodGet, "/ids/monotonic?count=1", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusTeapot {
		t.Fatalf("expected status passthrough, got %d", rec.Code)
	}
	if rec.Body.String() != "short and stout" {
		t.Fatalf("expected body passthrough, got %q", rec.Body.String())
	}
}
