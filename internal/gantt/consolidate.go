package gantt

import (
	"sort"

	"ganttview/internal/model"
)

// Consolidate groups MTS timelines sharing a processing unit and an order
// into display bands, one sub-lane per machine. Sub-lane indices are
// assigned lexicographically by machine name, so identical input always
// yields an identical layout no matter the row order. Records are grouped
// as-is: nothing is merged, altered, or dropped. Returns nil for SCH.
func Consolidate(s *model.Schedule) []model.ConsolidationGroup {
	if s.Mode != model.ModeMTS {
		return nil
	}

	type bandKey struct {
		pu    string
		order string
	}
	bands := make(map[bandKey][]*model.Timeline)
	for i := range s.Timelines {
		tl := &s.Timelines[i]
		bk := bandKey{pu: tl.Key.ProcessingUnit, order: tl.Key.Order}
		bands[bk] = append(bands[bk], tl)
	}

	keys := make([]bandKey, 0, len(bands))
	for bk := range bands {
		keys = append(keys, bk)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].pu != keys[j].pu {
			return keys[i].pu < keys[j].pu
		}
		return keys[i].order < keys[j].order
	})

	groups := make([]model.ConsolidationGroup, 0, len(keys))
	for _, bk := range keys {
		tls := bands[bk]
		sort.Slice(tls, func(i, j int) bool {
			return tls[i].Key.Machine < tls[j].Key.Machine
		})
		g := model.ConsolidationGroup{ProcessingUnit: bk.pu, Order: bk.order}
		for idx, tl := range tls {
			g.Lanes = append(g.Lanes, model.SubLane{
				Machine: tl.Key.Machine,
				Index:   idx,
				Records: tl.Records,
			})
		}
		groups = append(groups, g)
	}
	return groups
}

// Slot is one distinct [Start, End) interval within a sub-lane, with every
// record occupying it. Renderers divide a shared slot between its records
// in proportion to batch size, the records themselves stay untouched.
type Slot struct {
	Start      float64
	End        float64
	Records    []model.TaskRecord
	BatchTotal float64
}

// StackedSlots collapses a sub-lane's records into distinct time slots,
// sorted by start. Multiple records sharing the exact same interval land in
// one slot with their batch sizes summed.
func StackedSlots(lane model.SubLane) []Slot {
	type interval struct{ start, end float64 }
	index := make(map[interval]int)
	var slots []Slot
	for _, r := range lane.Records {
		iv := interval{start: r.Start, end: r.End}
		i, ok := index[iv]
		if !ok {
			i = len(slots)
			index[iv] = i
			slots = append(slots, Slot{Start: r.Start, End: r.End})
		}
		slots[i].Records = append(slots[i].Records, r)
		slots[i].BatchTotal += r.BatchSize
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i].Start < slots[j].Start })
	return slots
}
