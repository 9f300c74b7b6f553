// Package present turns organization metadata into what the front-ends
// display: labeled field rows, the indented raw document, and the
// non-interactive text and JSON renderings.
package present

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
)

// Field labels in display order.
const (
	LabelOrgID     = "OrgID"
	LabelOrgType   = "OrgType"
	LabelOrgCell   = "OrgCell"
	LabelOktaURL   = "Okta URL"
	LabelCustomURL = "Custom URL"
)

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// rawIndent is the per-level indent of the raw JSON view.
const rawIndent = "  "

// Field is one labeled, copyable value.
type Field struct {
	Label string
	Value string
}

// Fields returns the display rows for info: org ID, org type, cell and Okta
// URL, then one Custom URL row per alternate link.
func Fields(info *domain.OrgInfo) []Field {
	fields := []Field{
		{Label: LabelOrgID, Value: info.ID},
		{Label: LabelOrgType, Value: info.OrgType()},
		{Label: LabelOrgCell, Value: info.CellName()},
		{Label: LabelOktaURL, Value: info.Links.Organization.Href},
	}
	for _, alt := range info.Links.Alternates {
		fields = append(fields, Field{Label: LabelCustomURL, Value: alt.Href})
	}
	return fields
}

// RawJSON returns the response body indented by two spaces per level with key
// order preserved. When the body was not kept, the decoded fields are
// serialized instead.
func RawJSON(info *domain.OrgInfo) (string, error) {
	raw := []byte(info.Raw)
	if len(raw) == 0 {
		var err error
		if raw, err = json.Marshal(fallbackDocument(info)); err != nil {
			return "", fmt.Errorf("encoding organization metadata: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", rawIndent); err != nil {
		return "", fmt.Errorf("indenting organization metadata: %w", err)
	}
	return buf.String(), nil
}

// Write renders info to w in the given format.
func Write(w io.Writer, info *domain.OrgInfo, format string) error {
	switch format {
	case FormatText, "":
		_, err := fmt.Fprintln(w, Table(Fields(info)))
		return err
	case FormatJSON:
		doc, err := RawJSON(info)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, doc)
		return err
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

// Table lays fields out as two aligned columns without borders.
func Table(fields []Field) string {
	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		rows = append(rows, []string{f.Label, f.Value})
	}

	labelStyle := lipgloss.NewStyle().Bold(true).PaddingRight(2)

	return table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		BorderColumn(false).
		StyleFunc(func(_, col int) lipgloss.Style {
			if col == 0 {
				return labelStyle
			}
			return lipgloss.NewStyle()
		}).
		Rows(rows...).
		String()
}

type fallbackLink struct {
	Href string `json:"href"`
}

type fallbackLinks struct {
	Organization fallbackLink   `json:"organization"`
	Alternate    []fallbackLink `json:"alternate,omitempty"`
}

type fallbackDoc struct {
	ID       string        `json:"id"`
	Pipeline string        `json:"pipeline"`
	Cell     string        `json:"cell"`
	Links    fallbackLinks `json:"_links"`
}

func fallbackDocument(info *domain.OrgInfo) fallbackDoc {
	doc := fallbackDoc{
		ID:       info.ID,
		Pipeline: info.Pipeline.String(),
		Cell:     info.Cell,
		Links: fallbackLinks{
			Organization: fallbackLink{Href: info.Links.Organization.Href},
		},
	}
	for _, alt := range info.Links.Alternates {
		doc.Links.Alternate = append(doc.Links.Alternate, fallbackLink{Href: alt.Href})
	}
	return doc
}
