package form

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/muurk/consultacep/internal/logging"
	"github.com/muurk/consultacep/internal/lookup"
)

// Run shows the form full-screen until the user quits or ctx is done.
// initial pre-fills the field; it may be empty.
func Run(ctx context.Context, ctrl *lookup.Controller, initial string) error {
	m := New(ctrl).WithContext(ctx)
	if initial != "" {
		m = m.WithValue(initial)
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))

	logging.Debug("Starting form")
	if _, err := p.Run(); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("form error: %w", err)
	}

	// Leaving with a lookup in flight cancels it
	ctrl.Reset()
	return nil
}
