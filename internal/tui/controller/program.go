package controller

import (
	"yalv/internal/tui/model"

	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram creates the Bubble Tea program driving m. The program owns the
// terminal; console and ssh sessions borrow it through tea.ExecProcess.
func NewProgram(m *model.Model, opts ...tea.ProgramOption) *tea.Program {
	app := NewAppModel(m)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	return tea.NewProgram(app, opts...)
}
