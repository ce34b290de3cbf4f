package web

import (
	"fmt"
	"math"

	"ganttview/internal/config"
	"ganttview/internal/gantt"
	"ganttview/internal/model"
)

// ChartView is the fully computed page layout handed to the template.
type ChartView struct {
	Source       string
	Mode         model.Mode
	MachineCount int
	RecordCount  int
	Makespan     float64
	Width        int
	Height       int
	AxisY        int
	LabelSize    int
	Ticks        []Tick
	Rows         []RowView
	Legend       []LegendEntry
	Violations   []string
	ShowLegend   bool
}

// Tick is one vertical grid line of the time axis.
type Tick struct {
	X     float64
	Label string
}

// RowView is one horizontal band of the chart: either a group header or a
// machine lane carrying bars.
type RowView struct {
	Label    string
	IsHeader bool
	LabelX   int
	LabelY   float64
	Bars     []BarView
}

// BarView is one rendered rectangle plus its centered batch label.
type BarView struct {
	X, Y, W, H float64
	Fill       model.Color
	Text       string
	TextX      float64
	TextY      float64
}

// LegendEntry pairs a label with its swatch color.
type LegendEntry struct {
	Label string
	Color model.Color
}

const (
	labelColumn = 150 // left gutter for lane labels
	axisTop     = 24
	laneGap     = 6
)

// buildChartView lays the analysis out as SVG geometry. SCH draws one lane
// per machine with bars colored by operation; MTS stacks sub-lanes under
// each processing-unit/order band with bars colored by order, splitting a
// shared time slot between its records in proportion to batch size, the way
// the chart has always drawn concurrent subtasks.
func buildChartView(a *model.Analysis, cfg config.Config) ChartView {
	view := ChartView{
		Source:       a.Source,
		Mode:         a.Mode,
		MachineCount: len(a.Schedule.Timelines),
		RecordCount:  a.Schedule.RecordCount(),
		Makespan:     a.Makespan,
		Width:        cfg.ChartWidth,
		AxisY:        axisTop,
		LabelSize:    cfg.LabelSize,
		ShowLegend:   cfg.ShowLegend,
	}

	scale := 1.0
	if a.Makespan > 0 {
		scale = float64(cfg.ChartWidth-labelColumn-20) / a.Makespan
	}
	laneH := float64(cfg.LaneHeight)

	for t := 0.0; t <= math.Ceil(a.Makespan); t++ {
		view.Ticks = append(view.Ticks, Tick{
			X:     float64(labelColumn) + t*scale,
			Label: fmt.Sprintf("%g", t),
		})
	}

	y := float64(axisTop) + laneGap
	if a.Mode == model.ModeMTS {
		for _, g := range a.Groups {
			view.Rows = append(view.Rows, RowView{
				Label:    fmt.Sprintf("%s · order %s", g.ProcessingUnit, g.Order),
				IsHeader: true,
				LabelY:   y + laneH*0.6,
			})
			y += laneH * 0.7
			for _, lane := range g.Lanes {
				row := RowView{
					Label:  lane.Machine,
					LabelX: labelColumn - 8,
					LabelY: y + laneH*0.65,
				}
				fill := a.OrderColors[g.Order]
				for _, slot := range gantt.StackedSlots(lane) {
					row.Bars = append(row.Bars, slotBars(slot, fill, y, laneH, scale)...)
				}
				view.Rows = append(view.Rows, row)
				y += laneH + laneGap
			}
		}
	} else {
		for i := range a.Schedule.Timelines {
			tl := &a.Schedule.Timelines[i]
			row := RowView{
				Label:  tl.Key.Label(),
				LabelX: labelColumn - 8,
				LabelY: y + laneH*0.65,
			}
			for _, r := range tl.Records {
				row.Bars = append(row.Bars, barFor(r.Start, r.End, a.Colors[r.Operation],
					fmt.Sprintf("%g", r.BatchSize), y, laneH, scale))
			}
			view.Rows = append(view.Rows, row)
			y += laneH + laneGap
		}
	}
	view.Height = int(y + laneGap)

	if a.Mode == model.ModeMTS {
		for _, ord := range a.Schedule.Orders() {
			view.Legend = append(view.Legend, LegendEntry{Label: "order " + ord, Color: a.OrderColors[ord]})
		}
	}
	for _, op := range a.Schedule.Operations() {
		view.Legend = append(view.Legend, LegendEntry{Label: op, Color: a.Colors[op]})
	}

	for _, v := range a.Violations {
		view.Violations = append(view.Violations, fmt.Sprintf(
			"%s on %s: [%g → %g] %s (line %d) vs [%g → %g] %s (line %d)",
			v.Kind, v.Key.Label(),
			v.A.Start, v.A.End, v.A.Operation, v.A.Line,
			v.B.Start, v.B.End, v.B.Operation, v.B.Line))
	}
	return view
}

// slotBars renders one time slot. A slot held by a single record is one box;
// a shared slot is divided horizontally by batch share.
func slotBars(slot gantt.Slot, fill model.Color, y, laneH, scale float64) []BarView {
	if len(slot.Records) == 1 {
		r := slot.Records[0]
		return []BarView{barFor(r.Start, r.End, fill, fmt.Sprintf("%g", r.BatchSize), y, laneH, scale)}
	}

	var bars []BarView
	x := float64(labelColumn) + slot.Start*scale
	total := slot.End - slot.Start
	for _, r := range slot.Records {
		share := total * r.BatchSize / slot.BatchTotal
		w := share * scale
		bars = append(bars, BarView{
			X: x, Y: y, W: w, H: laneH,
			Fill:  fill,
			Text:  fmt.Sprintf("%g", r.BatchSize),
			TextX: x + w/2,
			TextY: y + laneH*0.65,
		})
		x += w
	}
	return bars
}

func barFor(start, end float64, fill model.Color, text string, y, laneH, scale float64) BarView {
	x := float64(labelColumn) + start*scale
	w := (end - start) * scale
	return BarView{
		X: x, Y: y, W: w, H: laneH,
		Fill:  fill,
		Text:  text,
		TextX: x + w/2,
		TextY: y + laneH*0.65,
	}
}
