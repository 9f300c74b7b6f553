package domain

import (
	"encoding/json"
	"strings"
)

// Pipeline is the engine generation reported by an organization.
type Pipeline string

const (
	// PipelineIdx marks an Identity Engine organization.
	PipelineIdx Pipeline = "idx"
	// PipelineV1 marks a Classic Engine organization.
	PipelineV1 Pipeline = "v1"
)

// Display names for the two engine generations.
const (
	OrgTypeOIE     = "OIE"
	OrgTypeClassic = "Classic"
)

// String implements fmt.Stringer.
func (p Pipeline) String() string {
	return string(p)
}

// OrgType maps the pipeline to its product name. Anything other than idx is
// reported as Classic.
func (p Pipeline) OrgType() string {
	if p == PipelineIdx {
		return OrgTypeOIE
	}
	return OrgTypeClassic
}

// Link is a single hypermedia reference.
type Link struct {
	Href string
}

// Links holds the organization's primary URL and any custom domain URLs.
type Links struct {
	Organization Link
	Alternates   []Link
}

// OrgInfo is the metadata an Okta tenant publishes at its well-known
// organization endpoint. It is display data and is never mutated after the
// fetch that produced it.
type OrgInfo struct {
	ID       string
	Pipeline Pipeline
	Cell     string
	Links    Links

	// Raw is the response body exactly as received.
	Raw json.RawMessage
}

// OrgType returns "OIE" or "Classic".
func (o *OrgInfo) OrgType() string {
	return o.Pipeline.OrgType()
}

// CellName returns the cell identifier upper-cased, e.g. "OK12".
func (o *OrgInfo) CellName() string {
	return strings.ToUpper(o.Cell)
}

// Validate checks that the fields every view depends on are present.
// Returns a *ValidationError (wrapping ErrValidation) or nil.
func (o *OrgInfo) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(o.ID) == "" {
		fields["id"] = MsgRequired
	}
	if strings.TrimSpace(o.Links.Organization.Href) == "" {
		fields["_links.organization.href"] = MsgRequired
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
