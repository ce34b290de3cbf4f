package model

import "sort"

// Mode selects how machine identifiers in the input are interpreted.
type Mode string

const (
	// ModeSCH treats machine names as opaque strings (one task at a time).
	ModeSCH Mode = "SCH"
	// ModeMTS expects ProcessingUnit_Machine_Order compound identifiers.
	ModeMTS Mode = "MTS"
)

// ParseMode validates a mode token from the command line.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeSCH:
		return ModeSCH, nil
	case ModeMTS:
		return ModeMTS, nil
	}
	return "", &InvalidModeError{Value: s}
}

// MachineKey is the resolved identity of a timeline. The Mode tag decides
// which fields are meaningful: Name for SCH, the three MTS fields otherwise.
// Keys are comparable and usable as map keys.
type MachineKey struct {
	Mode           Mode
	Name           string // SCH only: the raw machine field
	ProcessingUnit string // MTS only
	Machine        string // MTS only
	Order          string // MTS only
}

// Label returns the display name for the timeline.
func (k MachineKey) Label() string {
	if k.Mode == ModeMTS {
		return k.ProcessingUnit + "/" + k.Machine + "/" + k.Order
	}
	return k.Name
}

// Raw reconstructs the machine field as it appeared in the input.
func (k MachineKey) Raw() string {
	if k.Mode == ModeMTS {
		return k.ProcessingUnit + "_" + k.Machine + "_" + k.Order
	}
	return k.Name
}

// TaskRecord is one parsed input row. Immutable after parsing.
type TaskRecord struct {
	RawMachine string  // machine field as given
	Start      float64 // begin time offset
	End        float64 // end time offset, always > Start
	Operation  string  // case-sensitive task type label
	BatchSize  float64 // positive, informational
	Line       int     // 1-based source line, for diagnostics
}

// Equal reports whether two records carry identical schedule data.
// The source line is deliberately ignored: a record repeated on another
// line is exactly what duplicate detection is after.
func (r TaskRecord) Equal(o TaskRecord) bool {
	return r.Start == o.Start && r.End == o.End &&
		r.Operation == o.Operation && r.BatchSize == o.BatchSize
}

// Overlaps reports whether two records collide under half-open interval
// semantics. Touching endpoints do not overlap.
func (r TaskRecord) Overlaps(o TaskRecord) bool {
	return r.Start < o.End && o.Start < r.End
}

// Timeline is the sequence of records resolved to one machine key,
// in input order.
type Timeline struct {
	Key     MachineKey
	Records []TaskRecord
}

// Schedule is the assembled model: one timeline per resolved key,
// in first-seen key order.
type Schedule struct {
	Mode      Mode
	Timelines []Timeline
}

// ByKey returns the timeline for a key, or nil if the key never appeared.
func (s *Schedule) ByKey(k MachineKey) *Timeline {
	for i := range s.Timelines {
		if s.Timelines[i].Key == k {
			return &s.Timelines[i]
		}
	}
	return nil
}

// RecordCount is the total number of records across all timelines.
func (s *Schedule) RecordCount() int {
	n := 0
	for i := range s.Timelines {
		n += len(s.Timelines[i].Records)
	}
	return n
}

// Operations returns the distinct operation labels, sorted.
func (s *Schedule) Operations() []string {
	return s.collect(func(r TaskRecord, k MachineKey) string { return r.Operation })
}

// Orders returns the distinct MTS order names, sorted. Empty for SCH.
func (s *Schedule) Orders() []string {
	if s.Mode != ModeMTS {
		return nil
	}
	return s.collect(func(r TaskRecord, k MachineKey) string { return k.Order })
}

// Machines returns the distinct machine names, sorted. For MTS this is the
// middle component of the compound identifier.
func (s *Schedule) Machines() []string {
	return s.collect(func(r TaskRecord, k MachineKey) string {
		if k.Mode == ModeMTS {
			return k.Machine
		}
		return k.Name
	})
}

func (s *Schedule) collect(f func(TaskRecord, MachineKey) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range s.Timelines {
		tl := &s.Timelines[i]
		for _, r := range tl.Records {
			v := f(r, tl.Key)
			if _, ok := seen[v]; !ok {
				seen[v] = struct{}{}
				out = append(out, v)
			}
		}
	}
	sort.Strings(out)
	return out
}

// Makespan is the maximum end time across all records.
func (s *Schedule) Makespan() float64 {
	ms := 0.0
	for i := range s.Timelines {
		for _, r := range s.Timelines[i].Records {
			if r.End > ms {
				ms = r.End
			}
		}
	}
	return ms
}

// ViolationKind distinguishes the two semantic conflicts.
type ViolationKind string

const (
	KindOverlap   ViolationKind = "Overlap"
	KindDuplicate ViolationKind = "Duplicate"
)

// Violation is one detected conflict between two records of a timeline.
// A is always the record with the earlier source line.
type Violation struct {
	Kind ViolationKind
	Key  MachineKey
	A    TaskRecord
	B    TaskRecord
}

// HasViolation reports whether any violation in the set names the given key.
func HasViolation(violations []Violation, key MachineKey) bool {
	for _, v := range violations {
		if v.Key == key {
			return true
		}
	}
	return false
}

// SubLane is one machine's records stacked inside a consolidation group.
type SubLane struct {
	Machine string
	Index   int // stable vertical position within the group
	Records []TaskRecord
}

// ConsolidationGroup collects every timeline sharing a processing unit and
// an order, for stacked rendering under one band. MTS only.
type ConsolidationGroup struct {
	ProcessingUnit string
	Order          string
	Lanes          []SubLane
}

// RecordCount is the number of records across the group's sub-lanes.
func (g ConsolidationGroup) RecordCount() int {
	n := 0
	for _, l := range g.Lanes {
		n += len(l.Records)
	}
	return n
}

// Color is a #rrggbb hex value, usable both for terminal styling and SVG.
type Color string

// Analysis bundles everything the renderers need: the validated schedule,
// the full violation set, the MTS grouping, and the shared color maps.
type Analysis struct {
	Mode        Mode
	Source      string // input path, for display
	Schedule    *Schedule
	Violations  []Violation
	Groups      []ConsolidationGroup // MTS only
	Colors      map[string]Color     // operation label -> color
	OrderColors map[string]Color     // MTS only: order -> color
	Makespan    float64
}
