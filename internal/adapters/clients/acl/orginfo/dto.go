// Package orginfo implements the Anti-Corruption Layer translators for the
// well-known okta-organization document.
package orginfo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// OrganizationDTO matches the /.well-known/okta-organization response body.
// Raw keeps the body exactly as received for the raw JSON view.
type OrganizationDTO struct {
	ID         string    `json:"id"`
	Pipeline   string    `json:"pipeline"`
	Cell       string    `json:"cell"`
	Links      LinksDTO  `json:"_links"`
	Alternates []LinkDTO `json:"alternates,omitempty"`

	Raw json.RawMessage `json:"-"`
}

// LinksDTO matches the HAL-style _links object.
type LinksDTO struct {
	Organization LinkDTO     `json:"organization"`
	Alternate    LinkListDTO `json:"alternate,omitempty"`
}

// LinkDTO is a single HAL link.
type LinkDTO struct {
	Href string `json:"href"`
}

// LinkListDTO decodes a HAL relation that may hold one link object or an
// array of them.
type LinkListDTO []LinkDTO

// UnmarshalJSON keeps the raw body alongside the decoded fields.
func (d *OrganizationDTO) UnmarshalJSON(data []byte) error {
	type plain OrganizationDTO

	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	*d = OrganizationDTO(p)
	d.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// UnmarshalJSON accepts an object, an array of objects, or null.
func (l *LinkListDTO) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)

	switch {
	case len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")):
		*l = nil
		return nil

	case trimmed[0] == '[':
		var links []LinkDTO
		if err := json.Unmarshal(trimmed, &links); err != nil {
			return fmt.Errorf("decoding link array: %w", err)
		}
		*l = links
		return nil

	default:
		var link LinkDTO
		if err := json.Unmarshal(trimmed, &link); err != nil {
			return fmt.Errorf("decoding link object: %w", err)
		}
		*l = LinkListDTO{link}
		return nil
	}
}
