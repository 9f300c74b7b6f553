// Package controller holds the view state of the lookup form: the typed
// domain, its completion hint, the request lifecycle and the last outcome.
//
// A Controller is owned by a single event loop and is not safe for concurrent
// use. The interactive form drives it with Begin and Finish around an
// asynchronous fetch; the command line uses Submit, which does both in one
// call.
package controller

import (
	"context"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/domain/tenant"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

// ErrorPrefix is prepended to every failure message shown to the user.
const ErrorPrefix = "Error: "

// Submission is a confirmed request: the completed domain and the metadata
// URL built from it.
type Submission struct {
	Domain string
	URL    string
}

// Controller is the form's state machine.
type Controller struct {
	input   string
	hint    string
	state   State
	result  *domain.OrgInfo
	err     error
	showRaw bool
}

// New returns a Controller in the idle state with empty input.
func New() *Controller {
	return &Controller{}
}

// Input returns the current domain text.
func (c *Controller) Input() string { return c.input }

// Hint returns the pending completion suffix, or "".
func (c *Controller) Hint() string { return c.hint }

// State returns the request lifecycle state.
func (c *Controller) State() State { return c.state }

// Loading reports whether a request is outstanding.
func (c *Controller) Loading() bool { return c.state == StateLoading }

// CanSubmit reports whether Begin would start a request.
func (c *Controller) CanSubmit() bool {
	return c.input != "" && c.state != StateLoading
}

// Result returns the last successful outcome. It is nil after a failure.
func (c *Controller) Result() *domain.OrgInfo { return c.result }

// Err returns the last failure, or nil.
func (c *Controller) Err() error { return c.err }

// ErrorMessage returns the failure as displayed, "Error: <message>", or ""
// when the last request did not fail.
func (c *Controller) ErrorMessage() string {
	if c.err == nil {
		return ""
	}
	return ErrorPrefix + c.err.Error()
}

// ShowRaw reports whether the raw JSON view is selected.
func (c *Controller) ShowRaw() bool { return c.showRaw }

// SetInput replaces the domain text with raw minus its spaces and recomputes
// the hint.
func (c *Controller) SetInput(raw string) {
	c.input = tenant.CleanInput(raw)
	c.hint = tenant.AutoCompleteDomain(c.input)
}

// AcceptHint appends the pending hint to the input and clears it. It reports
// whether there was a hint to accept.
func (c *Controller) AcceptHint() bool {
	if c.hint == "" {
		return false
	}
	c.input += c.hint
	c.hint = ""
	return true
}

// ToggleRaw flips between the field view and the raw JSON view.
func (c *Controller) ToggleRaw() {
	c.showRaw = !c.showRaw
}

// Begin confirms a submission. The pending hint is forced into the input and
// cleared, the metadata URL is built and the state becomes loading.
//
// It returns false without changing anything when the input is empty or a
// request is already outstanding.
func (c *Controller) Begin() (Submission, bool) {
	if !c.CanSubmit() {
		return Submission{}, false
	}

	c.input += c.hint
	c.hint = ""
	c.state = StateLoading

	return Submission{
		Domain: c.input,
		URL:    tenant.NormalizeDomain(c.input),
	}, true
}

// Finish records the outcome of the outstanding request. Success stores info
// and clears any error; failure stores err and clears any prior result.
//
// It reports false and ignores the outcome when no request is outstanding.
func (c *Controller) Finish(info *domain.OrgInfo, err error) bool {
	if c.state != StateLoading {
		return false
	}

	if err != nil {
		c.state = StateError
		c.err = err
		c.result = nil
		return true
	}

	c.state = StateSuccess
	c.result = info
	c.err = nil
	return true
}

// Submit runs one complete submission synchronously: Begin, a single call to
// svc, then Finish. It returns domain.ErrEmptyDomain or domain.ErrBusy
// without calling svc when Begin refuses.
func (c *Controller) Submit(ctx context.Context, svc ports.OrgInfoService) (*domain.OrgInfo, error) {
	sub, ok := c.Begin()
	if !ok {
		if c.input == "" {
			return nil, domain.ErrEmptyDomain
		}
		return nil, domain.ErrBusy
	}

	info, err := svc.GetOrgInfo(ctx, sub.URL)
	c.Finish(info, err)
	if err != nil {
		return nil, err
	}
	return info, nil
}
