package acl

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"

	"golang.org/x/net/idna"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/platform/httpclient"
)

// errTrailingData reports a second JSON value after the response document.
var errTrailingData = errors.New("unexpected data after JSON document")

// Requester centralizes the HTTP request lifecycle for ACL clients:
// URL preparation, execution via httpclient.Client, response body cleanup,
// status code validation, error translation, and bounded JSON decoding.
type Requester struct {
	client *httpclient.Client
	logger *slog.Logger
}

// NewRequester creates a Requester backed by the given HTTP client and logger.
func NewRequester(client *httpclient.Client, logger *slog.Logger) *Requester {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Requester{client: client, logger: logger}
}

// Get issues a single GET to rawURL and decodes a 2xx JSON body into
// respBody (if non-nil).
//
// Non-2xx responses are passed to TranslateHTTPError. Transport failures are
// returned as the *url.Error the client produced, which already names the
// method and URL. A body that is not exactly one JSON value wraps
// domain.ErrMalformedResponse.
func (r *Requester) Get(ctx context.Context, rawURL string, respBody any) error {
	target, err := asciiURL(rawURL)
	if err != nil {
		return fmt.Errorf("invalid metadata URL: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating GET request for %s: %w", rawURL, err)
	}

	return r.execute(req, respBody)
}

// Name returns the downstream identifier of the underlying HTTP client.
func (r *Requester) Name() string {
	return r.client.Name()
}

// closeBody is a helper that closes an HTTP response body and logs on failure.
func (r *Requester) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		r.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// execute sends the request, checks the status code, and optionally decodes
// the response body. It ensures resp.Body is always closed.
func (r *Requester) execute(req *http.Request, respBody any) error {
	ctx := req.Context()

	resp, err := r.client.Do(ctx, req)
	if err != nil {
		r.logger.ErrorContext(ctx, "request failed",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.String("error", err.Error()),
		)
		return err
	}
	defer r.closeBody(ctx, resp)

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		translateErr := TranslateHTTPError(resp)
		r.logger.ErrorContext(ctx, "unexpected status",
			slog.String("method", req.Method),
			slog.String("url", req.URL.String()),
			slog.Int("status", resp.StatusCode),
		)
		return translateErr
	}

	if respBody == nil {
		return nil
	}

	var body io.Reader = resp.Body
	if limit := r.client.MaxBodyBytes(); limit > 0 {
		body = io.LimitReader(resp.Body, limit)
	}
	dec := json.NewDecoder(body)
	if err := dec.Decode(respBody); err != nil {
		return fmt.Errorf("%w: decoding response from %s %s: %w",
			domain.ErrMalformedResponse, req.Method, req.URL.String(), err)
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err == nil {
			err = errTrailingData
		}
		return fmt.Errorf("%w: decoding response from %s %s: %w",
			domain.ErrMalformedResponse, req.Method, req.URL.String(), err)
	}

	return nil
}

// asciiURL converts an internationalized host to its ASCII (punycode) form
// using the IDNA lookup profile. The port, path and query are kept as-is. If
// the host cannot be converted it is left unchanged and the dial decides.
func asciiURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}

	host := u.Hostname()
	if host == "" {
		return u.String(), nil
	}

	ascii, err := idna.Lookup.ToASCII(host)
	if err != nil || ascii == host {
		return u.String(), nil
	}

	if port := u.Port(); port != "" {
		u.Host = net.JoinHostPort(ascii, port)
	} else {
		u.Host = ascii
	}
	return u.String(), nil
}
