// Package tui is the interactive lookup form. It renders a controller.Controller
// and feeds it keystrokes; the fetch itself runs as a Bubble Tea command so the
// screen stays responsive while the request is outstanding.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/oktaorginfo/internal/adapters/present"
	"github.com/jsamuelsen11/oktaorginfo/internal/app/controller"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

// Model is the Bubble Tea model for the lookup form.
type Model struct {
	ctx  context.Context
	svc  ports.OrgInfoService
	clip ports.Clipboard
	ctrl *controller.Controller

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keys    keyMap

	selected  int
	notice    string
	noticeSeq int
}

// New builds the form. initial pre-fills the domain field.
func New(ctx context.Context, svc ports.OrgInfoService, clip ports.Clipboard, initial string) Model {
	ti := textinput.New()
	ti.Placeholder = "mycompany.okta.com"
	ti.Prompt = "Okta domain: "
	ti.CharLimit = 253
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = buttonStyle

	m := Model{
		ctx:     ctx,
		svc:     svc,
		clip:    clip,
		ctrl:    controller.New(),
		input:   ti,
		spinner: sp,
		help:    help.New(),
		keys:    defaultKeyMap(),
	}
	m.setInput(initial)
	return m
}

// Controller exposes the form state, mostly for tests and callers that want
// the final outcome after the program exits.
func (m Model) Controller() *controller.Controller {
	return m.ctrl
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case lookupDoneMsg:
		m.ctrl.Finish(msg.info, msg.err)
		m.selected = 0
		return m, nil

	case spinner.TickMsg:
		if !m.ctrl.Loading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case copyFadeMsg:
		if msg.seq == m.noticeSeq {
			m.notice = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		sub, ok := m.ctrl.Begin()
		if !ok {
			return m, nil
		}
		m.syncInput()
		return m, tea.Batch(m.spinner.Tick, lookupCmd(m.ctx, m.svc, sub))

	case key.Matches(msg, m.keys.Accept):
		if m.ctrl.AcceptHint() {
			m.syncInput()
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < m.fieldCount()-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.Raw):
		m.ctrl.ToggleRaw()
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		return m.copySelection()
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.setInput(m.input.Value())
	}
	return m, cmd
}

// setInput routes text through the controller, which strips spaces and
// recomputes the hint, then mirrors the cleaned value back into the field.
func (m *Model) setInput(raw string) {
	m.ctrl.SetInput(raw)
	if m.input.Value() != m.ctrl.Input() {
		m.syncInput()
	}
}

func (m *Model) syncInput() {
	m.input.SetValue(m.ctrl.Input())
	m.input.CursorEnd()
}

func (m Model) fieldCount() int {
	if m.ctrl.Result() == nil {
		return 0
	}
	return len(present.Fields(m.ctrl.Result()))
}

// copySelection writes the selected field's value, or the raw document when
// the raw view is showing, to the clipboard.
func (m Model) copySelection() (tea.Model, tea.Cmd) {
	info := m.ctrl.Result()
	if info == nil || m.clip == nil {
		return m, nil
	}

	var label, text string
	if m.ctrl.ShowRaw() {
		doc, err := present.RawJSON(info)
		if err != nil {
			return m.flash(fmt.Sprintf("Copy failed: %v", err))
		}
		label, text = "raw JSON", doc
	} else {
		fields := present.Fields(info)
		f := fields[min(m.selected, len(fields)-1)]
		label, text = f.Label, f.Value
	}

	if err := m.clip.WriteAll(text); err != nil {
		return m.flash(fmt.Sprintf("Copy failed: %v", err))
	}
	return m.flash("Copied " + label)
}

func (m Model) flash(notice string) (tea.Model, tea.Cmd) {
	m.noticeSeq++
	m.notice = notice
	return m, fadeCmd(m.noticeSeq)
}

// Run starts the form on the given terminal streams and blocks until the user
// quits or ctx is canceled. Cancellation is not reported as an error.
func Run(ctx context.Context, m Model, in io.Reader, out io.Writer) (Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
	)

	final, err := p.Run()
	if err != nil && !(errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil) {
		return m, fmt.Errorf("running interactive form: %w", err)
	}
	if fm, ok := final.(Model); ok {
		return fm, nil
	}
	return m, nil
}
