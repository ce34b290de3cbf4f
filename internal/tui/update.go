package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles events.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 4
		m.syncViewport()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				m.InputMode = false
				m.performSearch()
				return m, nil
			case tea.KeyEsc:
				m.InputMode = false
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.syncViewport()
			return m, cmd
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.InputBuffer.Blur()
				m.SearchActive = false
				m.InputBuffer.SetValue("")
				m.performSearch()
				return m, nil
			}
			if m.ShowViolations {
				m.ShowViolations = false
				m.syncViewport()
				return m, nil
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
				m.syncViewport()
			}
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
				m.syncViewport()
			}
		case "v":
			m.ShowViolations = !m.ShowViolations
			m.syncViewport()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			m.syncViewport()
			return m, textinput.Blink
		default:
			// Scroll keys (pgup/pgdown/wheel) belong to the details pane.
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
			return m, cmd
		}

	case tea.MouseMsg:
		m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
		return m, cmd
	}

	return m, cmd
}

// syncViewport refreshes the details pane content and rewinds the scroll
// position, since the pane now shows something new.
func (m *AppModel) syncViewport() {
	if m.ShowViolations {
		m.DetailsViewport.SetContent(m.violationsContent())
	} else {
		m.DetailsViewport.SetContent(m.detailsContent())
	}
	m.DetailsViewport.GotoTop()
}

// performSearch filters timelines to those running an operation whose label
// starts with the typed term.
func (m *AppModel) performSearch() {
	term := strings.ToLower(m.InputBuffer.Value())
	if term == "" {
		m.SearchActive = false
		m.FilteredIndices = allTimelineIndices(m.Analysis)
	} else {
		m.SearchActive = true
		var result []int
		for i := range m.Analysis.Schedule.Timelines {
			tl := &m.Analysis.Schedule.Timelines[i]
			for _, r := range tl.Records {
				if strings.HasPrefix(strings.ToLower(r.Operation), term) {
					result = append(result, i)
					break
				}
			}
		}
		m.FilteredIndices = result
	}

	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
	m.syncViewport()
}
