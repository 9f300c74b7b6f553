package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jsamuelsen11/oktaorginfo/internal/app/controller"
	"github.com/jsamuelsen11/oktaorginfo/internal/domain"
	"github.com/jsamuelsen11/oktaorginfo/internal/ports"
)

// copyFadeDelay is how long the copy notice stays visible.
const copyFadeDelay = 2 * time.Second

// lookupDoneMsg carries the outcome of the outstanding request back into
// the event loop.
type lookupDoneMsg struct {
	info *domain.OrgInfo
	err  error
}

// copyFadeMsg clears the copy notice if no newer notice replaced it.
type copyFadeMsg struct {
	seq int
}

// lookupCmd performs the single request for sub off the event loop.
func lookupCmd(ctx context.Context, svc ports.OrgInfoService, sub controller.Submission) tea.Cmd {
	return func() tea.Msg {
		info, err := svc.GetOrgInfo(ctx, sub.URL)
		return lookupDoneMsg{info: info, err: err}
	}
}

func fadeCmd(seq int) tea.Cmd {
	return tea.Tick(copyFadeDelay, func(time.Time) tea.Msg {
		return copyFadeMsg{seq: seq}
	})
}
