package acl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	neturl "net/url"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/config"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/httpclient"
)

const wellKnownPath = "/.well-known/okta-organization"

// newTestClient creates an httpclient.Client suitable for talking to a test
// server.
func newTestClient(t *testing.T) *httpclient.Client {
	t.Helper()

	cfg := &config.ClientConfig{
		Timeout:      5 * time.Second,
		UserAgent:    "oktaorginfo-test",
		MaxBodyBytes: 1 << 20,
	}
	return httpclient.New(cfg, "okta-wellknown-test", nil, nil)
}

// serveBody returns a test server that answers every request with the given
// status and JSON body, counting the requests it receives.
func serveBody(t *testing.T, status int, body string, calls *atomic.Int32) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls != nil {
			calls.Add(1)
		}
		if r.Method != http.MethodGet || r.URL.Path != wellKnownPath {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(ts.Close)
	return ts
}

func TestOrgInfoClient_FetchOrgInfo(t *testing.T) {
	t.Parallel()

	body := `{"id":"00o1a2b3c4","pipeline":"idx","cell":"ok12",` +
		`"_links":{"organization":{"href":"https://acme.okta.com"},"alternate":{"href":"https://login.acme.com"}}}`
	var calls atomic.Int32
	ts := serveBody(t, http.StatusOK, body, &calls)

	client := NewOrgInfoClient(newTestClient(t), nil)
	info, err := client.FetchOrgInfo(context.Background(), ts.URL+wellKnownPath)
	if err != nil {
		t.Fatalf("FetchOrgInfo() error = %v", err)
	}

	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1", got)
	}
	if info.ID != "00o1a2b3c4" {
		t.Errorf("ID = %q, want %q", info.ID, "00o1a2b3c4")
	}
	if info.OrgType() != domain.OrgTypeOIE {
		t.Errorf("OrgType() = %q, want %q", info.OrgType(), domain.OrgTypeOIE)
	}
	if info.CellName() != "OK12" {
		t.Errorf("CellName() = %q, want %q", info.CellName(), "OK12")
	}
	if info.Links.Organization.Href != "https://acme.okta.com" {
		t.Errorf("Organization.Href = %q", info.Links.Organization.Href)
	}
	if len(info.Links.Alternates) != 1 || info.Links.Alternates[0].Href != "https://login.acme.com" {
		t.Errorf("Alternates = %+v, want one login.acme.com link", info.Links.Alternates)
	}
	if string(info.Raw) != body {
		t.Errorf("Raw = %s, want body verbatim", info.Raw)
	}
}

func TestOrgInfoClient_FetchOrgInfo_TrailingNewline(t *testing.T) {
	t.Parallel()

	ts := serveBody(t, http.StatusOK,
		"{\"id\":\"00o1\",\"_links\":{\"organization\":{\"href\":\"https://a\"}}}\n", nil)

	client := NewOrgInfoClient(newTestClient(t), nil)
	info, err := client.FetchOrgInfo(context.Background(), ts.URL+wellKnownPath)
	if err != nil {
		t.Fatalf("FetchOrgInfo() error = %v", err)
	}
	if info.ID != "00o1" {
		t.Errorf("ID = %q, want %q", info.ID, "00o1")
	}
}

func TestOrgInfoClient_FetchOrgInfo_NotFound(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := serveBody(t, http.StatusNotFound,
		`{"errorCode":"E0000007","errorSummary":"Not found: Resource not found"}`, &calls)

	client := NewOrgInfoClient(newTestClient(t), nil)
	_, err := client.FetchOrgInfo(context.Background(), ts.URL+wellKnownPath)

	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("error = %v, want ErrNotFound", err)
	}
	if !strings.HasPrefix(err.Error(), "Failed to fetch: Not Found") {
		t.Errorf("error message = %q, want prefix %q", err.Error(), "Failed to fetch: Not Found")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1 (no retry)", got)
	}
}

func TestOrgInfoClient_FetchOrgInfo_ServerErrorNotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := serveBody(t, http.StatusServiceUnavailable, `{}`, &calls)

	client := NewOrgInfoClient(newTestClient(t), nil)
	_, err := client.FetchOrgInfo(context.Background(), ts.URL+wellKnownPath)

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("error = %v, want ErrUnavailable", err)
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server calls = %d, want 1 (no retry)", got)
	}
}

func TestOrgInfoClient_FetchOrgInfo_Malformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "not json", body: `<html>sign in</html>`},
		{name: "truncated", body: `{"id":"00o1"`},
		{name: "missing id", body: `{"_links":{"organization":{"href":"https://acme.okta.com"}}}`},
		{name: "missing organization link", body: `{"id":"00o1","pipeline":"v1"}`},
		{name: "alternate wrong shape", body: `{"id":"00o1","_links":{"alternate":"x"}}`},
		{
			name: "html after document",
			body: `{"id":"00o1","_links":{"organization":{"href":"https://a"}}}<html>oops</html>`,
		},
		{
			name: "second document",
			body: `{"id":"00o1","_links":{"organization":{"href":"https://a"}}}{"id":"00o2"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := serveBody(t, http.StatusOK, tt.body, nil)
			client := NewOrgInfoClient(newTestClient(t), nil)

			_, err := client.FetchOrgInfo(context.Background(), ts.URL+wellKnownPath)
			if !errors.Is(err, domain.ErrMalformedResponse) {
				t.Errorf("error = %v, want ErrMalformedResponse", err)
			}
		})
	}
}

func TestOrgInfoClient_FetchOrgInfo_TransportError(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.NotFoundHandler())
	url := ts.URL + wellKnownPath
	ts.Close()

	client := NewOrgInfoClient(newTestClient(t), nil)
	_, err := client.FetchOrgInfo(context.Background(), url)
	if err == nil {
		t.Fatal("FetchOrgInfo() expected error for closed server")
	}
	var urlErr *neturl.Error
	if !errors.As(err, &urlErr) {
		t.Fatalf("error = %T, want *url.Error", err)
	}
	if urlErr.URL != url {
		t.Errorf("url.Error URL = %q, want %q", urlErr.URL, url)
	}
	if got := strings.Count(err.Error(), url); got != 1 {
		t.Errorf("error = %q names the URL %d times, want once", err.Error(), got)
	}

	var fetchErr *domain.FetchError
	if errors.As(err, &fetchErr) {
		t.Errorf("transport error should not be a FetchError: %v", err)
	}
}

func TestOrgInfoClient_FetchOrgInfo_InvalidURL(t *testing.T) {
	t.Parallel()

	client := NewOrgInfoClient(newTestClient(t), nil)
	_, err := client.FetchOrgInfo(context.Background(), "https://acme okta.com/x\x7f")
	if err == nil {
		t.Fatal("FetchOrgInfo() expected error for invalid URL")
	}
}

func TestOrgInfoClient_FetchOrgInfo_ContextCanceled(t *testing.T) {
	t.Parallel()

	ts := serveBody(t, http.StatusOK, `{}`, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewOrgInfoClient(newTestClient(t), nil)
	_, err := client.FetchOrgInfo(ctx, ts.URL+wellKnownPath)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestOrgInfoClient_FetchOrgInfo_BodyLimit(t *testing.T) {
	t.Parallel()

	body := `{"id":"00o1","_links":{"organization":{"href":"https://acme.okta.com"}},"pad":"` +
		strings.Repeat("x", 256) + `"}`
	ts := serveBody(t, http.StatusOK, body, nil)

	cfg := &config.ClientConfig{MaxBodyBytes: 64}
	client := NewOrgInfoClient(httpclient.New(cfg, "okta-wellknown-test", nil, nil), nil)

	_, err := client.FetchOrgInfo(context.Background(), ts.URL+wellKnownPath)
	if !errors.Is(err, domain.ErrMalformedResponse) {
		t.Errorf("error = %v, want ErrMalformedResponse for truncated body", err)
	}
}
