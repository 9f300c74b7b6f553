package logging_test

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jsamuelsen11/oktaorginfo/internal/platform/logging"
)

func TestRedactHeaders(t *testing.T) {
	t.Parallel()

	h := http.Header{}
	h.Set("Content-Type", "application/json")
	h.Set("Set-Cookie", "sid=abc123")
	h.Set("Authorization", "SSWS 00abc")
	h.Add("Vary", "Accept")
	h.Add("Vary", "Origin")

	attrs := logging.RedactHeaders(h)

	got := make(map[string]string, len(attrs))
	for _, a := range attrs {
		got[a.Key] = a.Value.String()
	}

	want := map[string]string{
		"Content-Type":  "application/json",
		"Set-Cookie":    "[REDACTED]",
		"Authorization": "[REDACTED]",
		"Vary":          "Accept,Origin",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("RedactHeaders()[%q] = %q, want %q", k, got[k], v)
		}
	}
	if len(got) != len(want) {
		t.Errorf("RedactHeaders() returned %d attrs, want %d", len(got), len(want))
	}
}

func TestRedactHeaders_Empty(t *testing.T) {
	t.Parallel()

	if attrs := logging.RedactHeaders(nil); len(attrs) != 0 {
		t.Errorf("RedactHeaders(nil) = %v, want empty", attrs)
	}
}

func TestRedactHeaders_OutboundResponse(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Set-Cookie", "JSESSIONID=7F3A9C; Path=/; Secure; HttpOnly")
		w.Header().Set("X-Okta-Request-Id", "aBcD123")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"00o1a2b3c4"}`))
	}))
	t.Cleanup(ts.Close)

	resp, err := http.Get(ts.URL + "/.well-known/okta-organization")
	if err != nil {
		t.Fatalf("GET error = %v", err)
	}
	_ = resp.Body.Close()

	var buf bytes.Buffer
	logging.New("debug", "json", &buf).Debug("received response",
		slog.Attr{Key: "headers", Value: slog.GroupValue(logging.RedactHeaders(resp.Header)...)},
	)

	out := buf.String()
	if strings.Contains(out, "7F3A9C") {
		t.Errorf("output = %q, want session cookie redacted", out)
	}
	if !strings.Contains(out, `"Set-Cookie":"[REDACTED]"`) {
		t.Errorf("output = %q, want Set-Cookie marked [REDACTED]", out)
	}
	if !strings.Contains(out, `"X-Okta-Request-Id":"aBcD123"`) {
		t.Errorf("output = %q, want request id kept for support tickets", out)
	}
}
