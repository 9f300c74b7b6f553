package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	muted  = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"}
	danger = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}

	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1)
	hintStyle     = lipgloss.NewStyle().Foreground(muted)
	buttonStyle   = lipgloss.NewStyle().Foreground(accent).Bold(true)
	disabledStyle = lipgloss.NewStyle().Foreground(muted)
	errorStyle    = lipgloss.NewStyle().Foreground(danger)
	labelStyle    = lipgloss.NewStyle().Bold(true).Width(12)
	selectedStyle = lipgloss.NewStyle().Foreground(accent)
	noticeStyle   = lipgloss.NewStyle().Foreground(muted).Italic(true)
	panelStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1).
			MarginTop(1)
)
