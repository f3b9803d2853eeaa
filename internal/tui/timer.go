package tui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/saportinsta65/life-rpg/internal/engine"
)

// RunTimer drives the timer screen until the run stops or the user quits.
// Its 1-second tea.Tick is the external clock feeding engine ticks.
func RunTimer(svc *engine.Service, out io.Writer) error {
	m := newTimerModel(svc)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
