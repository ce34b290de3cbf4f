package gantt

import (
	"sort"

	"ganttview/internal/model"
)

// Validate runs duplicate and overlap detection over every timeline and
// returns the combined violation set. It never stops at the first finding:
// the point of a validation run is to report every problem at once. An empty
// result means the schedule is safe to render.
func Validate(s *model.Schedule) []model.Violation {
	var out []model.Violation
	for i := range s.Timelines {
		tl := &s.Timelines[i]
		out = append(out, findDuplicates(tl)...)
		out = append(out, findOverlaps(tl)...)
	}
	return out
}

// findDuplicates reports each record whose start, end, operation, and batch
// size all match an earlier record in the same timeline. Every repeat is
// paired with the first occurrence, so two identical records yield exactly
// one violation.
func findDuplicates(tl *model.Timeline) []model.Violation {
	var out []model.Violation
	for i, rec := range tl.Records {
		for j := 0; j < i; j++ {
			if tl.Records[j].Equal(rec) {
				out = append(out, model.Violation{
					Kind: model.KindDuplicate,
					Key:  tl.Key,
					A:    tl.Records[j],
					B:    rec,
				})
				break
			}
		}
	}
	return out
}

// findOverlaps reports every pair of records in the timeline whose half-open
// intervals collide. Records are swept in start order, so the scan can stop
// as soon as a later record begins at or after the current one ends; the
// reported pair set is the same as a full quadratic check.
func findOverlaps(tl *model.Timeline) []model.Violation {
	byStart := make([]model.TaskRecord, len(tl.Records))
	copy(byStart, tl.Records)
	sort.SliceStable(byStart, func(i, j int) bool {
		if byStart[i].Start != byStart[j].Start {
			return byStart[i].Start < byStart[j].Start
		}
		return byStart[i].Line < byStart[j].Line
	})

	var out []model.Violation
	for i := range byStart {
		for j := i + 1; j < len(byStart); j++ {
			if byStart[j].Start >= byStart[i].End {
				break
			}
			if byStart[i].Overlaps(byStart[j]) {
				a, b := byStart[i], byStart[j]
				if b.Line < a.Line {
					a, b = b, a
				}
				out = append(out, model.Violation{
					Kind: model.KindOverlap,
					Key:  tl.Key,
					A:    a,
					B:    b,
				})
			}
		}
	}
	return out
}
