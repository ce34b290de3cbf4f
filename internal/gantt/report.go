package gantt

import (
	"fmt"
	"strings"

	"ganttview/internal/model"
)

// GenerateReport renders a plain-text breakdown of an analysis: per-machine
// timelines, the violation set, MTS consolidation bands, and the color
// legend. Verbose adds raw machine fields and source line numbers.
func GenerateReport(a *model.Analysis, verbose bool) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Gantt schedule report (%s mode)\n", a.Mode)
	if a.Source != "" {
		fmt.Fprintf(&b, "Input: %s\n", a.Source)
	}
	fmt.Fprintf(&b, "Machines: %d   Records: %d   Makespan: %g\n",
		len(a.Schedule.Timelines), a.Schedule.RecordCount(), a.Makespan)
	b.WriteString("\n")

	b.WriteString("Timelines\n")
	b.WriteString("---------\n")
	for i := range a.Schedule.Timelines {
		tl := &a.Schedule.Timelines[i]
		marker := model.IconOK
		if model.HasViolation(a.Violations, tl.Key) {
			marker = model.IconOverlap
		}
		fmt.Fprintf(&b, "%s %s (%d records)\n", marker, tl.Key.Label(), len(tl.Records))
		for _, r := range tl.Records {
			fmt.Fprintf(&b, "    [%g → %g] %s  batch %g", r.Start, r.End, r.Operation, r.BatchSize)
			if verbose {
				fmt.Fprintf(&b, "  (line %d, %s)", r.Line, r.RawMachine)
			}
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")

	b.WriteString("Violations\n")
	b.WriteString("----------\n")
	if len(a.Violations) == 0 {
		b.WriteString("none\n")
	}
	for _, v := range a.Violations {
		icon := model.IconOverlap
		if v.Kind == model.KindDuplicate {
			icon = model.IconDuplicate
		}
		fmt.Fprintf(&b, "%s %s on %s: [%g → %g] %s (line %d) vs [%g → %g] %s (line %d)\n",
			icon, v.Kind, v.Key.Label(),
			v.A.Start, v.A.End, v.A.Operation, v.A.Line,
			v.B.Start, v.B.End, v.B.Operation, v.B.Line)
	}
	b.WriteString("\n")

	if a.Mode == model.ModeMTS {
		b.WriteString("Consolidated bands\n")
		b.WriteString("------------------\n")
		for _, g := range a.Groups {
			fmt.Fprintf(&b, "%s / order %s (%d records)\n",
				g.ProcessingUnit, g.Order, g.RecordCount())
			for _, lane := range g.Lanes {
				fmt.Fprintf(&b, "  %s lane %d: %s", model.IconLane, lane.Index, lane.Machine)
				if verbose {
					for _, slot := range StackedSlots(lane) {
						fmt.Fprintf(&b, "  [%g → %g]×%d", slot.Start, slot.End, len(slot.Records))
					}
				}
				b.WriteString("\n")
			}
		}
		b.WriteString("\n")
	}

	b.WriteString("Legend\n")
	b.WriteString("------\n")
	for _, op := range a.Schedule.Operations() {
		fmt.Fprintf(&b, "%s %-12s %s\n", model.IconBand, op, a.Colors[op])
	}
	if a.Mode == model.ModeMTS {
		for _, ord := range a.Schedule.Orders() {
			fmt.Fprintf(&b, "%s order %-6s %s\n", model.IconBand, ord, a.OrderColors[ord])
		}
	}

	return b.String()
}
