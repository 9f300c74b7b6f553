package tui

import (
	"strings"

	"github.com/jsamuelsen11/oktaorginfo/internal/adapters/present"
)

const (
	tagline = "Pulls the OrgId, cell name, OIE vs. Classic, and more about an Okta tenant."

	disclaimer = "Requests go straight from this machine to the tenant; there is no backend. " +
		"Not affiliated with, endorsed by, or associated with Okta, Inc."
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("OktaOrgInfo"))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render(tagline))
	b.WriteString("\n\n")

	b.WriteString(m.input.View())
	if hint := m.ctrl.Hint(); hint != "" {
		b.WriteString(hintStyle.Render(hint))
	}
	b.WriteString("\n\n")

	switch {
	case m.ctrl.Loading():
		b.WriteString(m.spinner.View() + disabledStyle.Render(" Loading..."))
	case m.ctrl.CanSubmit():
		b.WriteString(buttonStyle.Render("[ Get Info ]"))
	default:
		b.WriteString(disabledStyle.Render("[ Get Info ]"))
	}
	b.WriteString("\n")

	if msg := m.ctrl.ErrorMessage(); msg != "" {
		b.WriteString(panelStyle.Render(errorStyle.Render(msg)))
		b.WriteString("\n")
	}

	if info := m.ctrl.Result(); info != nil {
		b.WriteString(panelStyle.Render(m.resultView()))
		b.WriteString("\n")

		raw := "off"
		if m.ctrl.ShowRaw() {
			raw = "on"
		}
		b.WriteString(hintStyle.Render("Show Raw: " + raw))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	b.WriteString("\n\n")
	b.WriteString(disabledStyle.Render(disclaimer))
	return b.String()
}

func (m Model) resultView() string {
	info := m.ctrl.Result()

	if m.ctrl.ShowRaw() {
		doc, err := present.RawJSON(info)
		if err != nil {
			return errorStyle.Render(err.Error())
		}
		return doc
	}

	fields := present.Fields(info)
	rows := make([]string, 0, len(fields))
	for i, f := range fields {
		cursor := "  "
		value := f.Value
		if i == m.selected {
			cursor = selectedStyle.Render("> ")
			value = selectedStyle.Render(value)
		}
		rows = append(rows, cursor+labelStyle.Render(f.Label)+value)
	}
	return strings.Join(rows, "\n")
}
