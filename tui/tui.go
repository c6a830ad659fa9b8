package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/swatch-cli/swatch/export"
)

// Run drives the wizard until the palette is exported or the user quits.
func Run(options *Options) (*export.Outcome, error) {
	bubble := newBubble(options)

	model, err := tea.NewProgram(bubble, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	final := model.(*statefulBubble)
	if final.state == errorState && final.lastError != nil {
		return nil, final.lastError
	}
	return &final.outcome, nil
}
