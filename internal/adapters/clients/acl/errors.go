// Package acl implements the Anti-Corruption Layer between an Okta tenant's
// well-known organization endpoint and the domain model. Response DTOs and
// their translators live in the orginfo subpackage; request execution and
// error mapping live here.
package acl

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 64 << 10 // 64 KB

// oktaError is the error body Okta returns from its public endpoints.
type oktaError struct {
	ErrorCode    string `json:"errorCode"`
	ErrorSummary string `json:"errorSummary"`
}

// TranslateHTTPError maps a non-success response to a *domain.FetchError.
// When the body is Okta's JSON error format, its summary becomes the error
// detail.
func TranslateHTTPError(resp *http.Response) error {
	ferr := &domain.FetchError{
		StatusCode: resp.StatusCode,
		Status:     reasonPhrase(resp),
		Detail:     parseOktaError(resp).ErrorSummary,
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		ferr.Err = domain.ErrNotFound
	case resp.StatusCode >= http.StatusInternalServerError:
		ferr.Err = domain.ErrUnavailable
	default:
		ferr.Err = domain.ErrFetch
	}
	return ferr
}

// reasonPhrase returns the status line without its leading code ("Not Found"
// for "404 Not Found"), falling back to the standard text for the code.
func reasonPhrase(resp *http.Response) string {
	reason := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if reason == "" {
		reason = http.StatusText(resp.StatusCode)
	}
	return reason
}

// parseOktaError attempts to read and parse an Okta error body from the
// response. Returns an empty oktaError if parsing fails.
func parseOktaError(resp *http.Response) oktaError {
	if resp.Body == nil {
		return oktaError{}
	}

	ct := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(ct, "application/json") {
		return oktaError{}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))
	if err != nil {
		return oktaError{}
	}

	var oe oktaError
	if err := json.Unmarshal(body, &oe); err != nil {
		return oktaError{}
	}
	return oe
}
