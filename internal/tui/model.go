package tui

import (
	"ganttview/internal/model"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Analysis *model.Analysis
	Err      error

	// UI State
	SelectedIdx int // index into FilteredIndices
	WindowSize  tea.WindowSizeMsg

	// View Modes
	ShowViolations bool

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // timeline indices currently shown
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel returns the initial state for a completed analysis.
func InitialModel(a *model.Analysis) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Operation label..."
	ti.CharLimit = 50
	ti.Width = 20

	m := AppModel{
		Analysis:        a,
		InputBuffer:     ti,
		DetailsViewport: viewport.New(60, 20),
	}
	m.FilteredIndices = allTimelineIndices(a)
	m.syncViewport()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func allTimelineIndices(a *model.Analysis) []int {
	out := make([]int, len(a.Schedule.Timelines))
	for i := range out {
		out[i] = i
	}
	return out
}
