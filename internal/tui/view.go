package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"ganttview/internal/model"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	laneLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	selectedLaneStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	violationStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	cleanStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78")) // Green

	detailStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("63"))
)

func (m AppModel) View() string {
	if m.Err != nil {
		return fmt.Sprintf("\n  Error: %v\n", m.Err)
	}
	a := m.Analysis

	width := m.WindowSize.Width
	if width < 40 {
		width = 80
	}
	chartWidth := width/2 - 4

	var b strings.Builder
	header := fmt.Sprintf("ganttview — %s (%s)", a.Source, a.Mode)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")

	if m.ShowViolations {
		b.WriteString(m.DetailsViewport.View())
		b.WriteString("\n")
	} else {
		left := m.renderLanes(chartWidth)
		right := detailStyle.Render(m.DetailsViewport.View())
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	}

	b.WriteString("\n")
	b.WriteString(m.renderLegend())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderLanes draws one row per timeline: label, status icon, and a bar
// strip scaled to the makespan.
func (m AppModel) renderLanes(chartWidth int) string {
	a := m.Analysis
	labelWidth := 0
	for _, i := range m.FilteredIndices {
		if l := len(a.Schedule.Timelines[i].Key.Label()); l > labelWidth {
			labelWidth = l
		}
	}

	var b strings.Builder
	for pos, i := range m.FilteredIndices {
		tl := &a.Schedule.Timelines[i]
		label := fmt.Sprintf("%-*s", labelWidth, tl.Key.Label())
		if pos == m.SelectedIdx {
			label = selectedLaneStyle.Render(label)
		} else {
			label = laneLabelStyle.Render(label)
		}

		status := cleanStyle.Render(model.IconOK)
		if model.HasViolation(a.Violations, tl.Key) {
			status = violationStyle.Render(model.IconOverlap)
		}

		barWidth := chartWidth - labelWidth - 4
		if barWidth < 10 {
			barWidth = 10
		}
		b.WriteString(fmt.Sprintf("%s %s %s\n", label, status, m.renderBar(tl, barWidth)))
	}
	if len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("no timelines match the search"))
		b.WriteString("\n")
	}
	return b.String()
}

// renderBar paints a timeline as colored cells over the [0, makespan] axis.
func (m AppModel) renderBar(tl *model.Timeline, barWidth int) string {
	a := m.Analysis
	if a.Makespan <= 0 {
		return ""
	}

	cells := make([]model.Color, barWidth)
	for _, r := range tl.Records {
		color := a.Colors[r.Operation]
		if a.Mode == model.ModeMTS {
			color = a.OrderColors[tl.Key.Order]
		}
		lo := int(r.Start / a.Makespan * float64(barWidth))
		hi := int(r.End / a.Makespan * float64(barWidth))
		if hi <= lo {
			hi = lo + 1
		}
		for c := lo; c < hi && c < barWidth; c++ {
			cells[c] = color
		}
	}

	var b strings.Builder
	for _, c := range cells {
		if c == "" {
			b.WriteString(dimStyle.Render("·"))
			continue
		}
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(string(c))).Render(" "))
	}
	return b.String()
}

// detailsContent builds the selected timeline's records and violations for
// the details viewport.
func (m AppModel) detailsContent() string {
	a := m.Analysis
	if len(m.FilteredIndices) == 0 {
		return ""
	}
	tl := &a.Schedule.Timelines[m.FilteredIndices[m.SelectedIdx]]

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n\n", tl.Key.Label()))
	for _, r := range tl.Records {
		b.WriteString(fmt.Sprintf("[%g → %g] %s  batch %g  (line %d)\n",
			r.Start, r.End, r.Operation, r.BatchSize, r.Line))
	}

	var own []model.Violation
	for _, v := range a.Violations {
		if v.Key == tl.Key {
			own = append(own, v)
		}
	}
	if len(own) > 0 {
		b.WriteString("\n")
		for _, v := range own {
			b.WriteString(violationStyle.Render(fmt.Sprintf("%s: lines %d and %d", v.Kind, v.A.Line, v.B.Line)))
			b.WriteString("\n")
		}
	}

	if m.InputMode || m.SearchActive {
		b.WriteString("\n/" + m.InputBuffer.View())
	}
	return b.String()
}

// violationsContent is the full-set view toggled with 'v'.
func (m AppModel) violationsContent() string {
	a := m.Analysis
	var b strings.Builder
	if len(a.Violations) == 0 {
		b.WriteString(cleanStyle.Render("No violations — schedule is safe to render."))
		b.WriteString("\n")
		return b.String()
	}
	for _, v := range a.Violations {
		icon := model.IconOverlap
		if v.Kind == model.KindDuplicate {
			icon = model.IconDuplicate
		}
		b.WriteString(violationStyle.Render(fmt.Sprintf("%s %s", icon, v.Kind)))
		b.WriteString(fmt.Sprintf(" on %s: [%g → %g] %s (line %d) vs [%g → %g] %s (line %d)\n",
			v.Key.Label(),
			v.A.Start, v.A.End, v.A.Operation, v.A.Line,
			v.B.Start, v.B.End, v.B.Operation, v.B.Line))
	}
	return b.String()
}

func (m AppModel) renderLegend() string {
	a := m.Analysis
	var parts []string
	if a.Mode == model.ModeMTS {
		for _, ord := range a.Schedule.Orders() {
			sw := lipgloss.NewStyle().Background(lipgloss.Color(string(a.OrderColors[ord]))).Render("  ")
			parts = append(parts, fmt.Sprintf("%s %s", sw, ord))
		}
	} else {
		for _, op := range a.Schedule.Operations() {
			sw := lipgloss.NewStyle().Background(lipgloss.Color(string(a.Colors[op]))).Render("  ")
			parts = append(parts, fmt.Sprintf("%s %s", sw, op))
		}
	}
	return strings.Join(parts, "   ")
}

func (m AppModel) renderFooter() string {
	viol := fmt.Sprintf("%d violations", len(m.Analysis.Violations))
	if len(m.Analysis.Violations) == 0 {
		viol = "clean"
	}
	return dimStyle.Render(fmt.Sprintf(
		"%s · makespan %g · ↑/↓ select · pgup/pgdn scroll · v violations · / search · q quit",
		viol, m.Analysis.Makespan))
}
