package gantt

import (
	"errors"
	"strings"
	"testing"

	"ganttview/internal/model"
)

func TestAnalyze_EndToEndMTS(t *testing.T) {
	a, err := Analyze(strings.NewReader(sampleMTS), model.ModeMTS)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if len(a.Violations) != 0 {
		t.Errorf("expected zero violations, got %v", a.Violations)
	}
	if len(a.Groups) != 2 {
		t.Fatalf("expected 2 consolidation groups, got %d", len(a.Groups))
	}
	if a.Groups[0].ProcessingUnit != "PU0" || a.Groups[1].ProcessingUnit != "PU2" {
		t.Errorf("unexpected groups: %+v", a.Groups)
	}

	if len(a.Colors) != 3 {
		t.Fatalf("expected colors for A, B, C, got %v", a.Colors)
	}
	// B appears on two machines, its color must be the same everywhere the
	// map is consulted.
	bColor := a.Colors["B"]
	if bColor == "" {
		t.Fatal("no color assigned to operation B")
	}
	if a.Colors["B"] != bColor {
		t.Error("color for B is not stable")
	}

	if a.Makespan != 3.83333 {
		t.Errorf("expected makespan 3.83333, got %g", a.Makespan)
	}
	if a.OrderColors["B"] == "" {
		t.Error("MTS analysis should color orders for the legend")
	}
}

func TestAnalyze_MalformedAbortsBeforeValidation(t *testing.T) {
	// The second line would also overlap the first; the structural error
	// must win and nothing else is reported.
	input := "PU0_M0_B 0 2 A 40.2\nPU0_M0_B 0 A 40.2\n"
	a, err := Analyze(strings.NewReader(input), model.ModeMTS)
	if a != nil {
		t.Fatal("no analysis should be produced for malformed input")
	}
	var mErr *model.MalformedRecordError
	if !errors.As(err, &mErr) {
		t.Fatalf("expected MalformedRecordError, got %v", err)
	}
}

func TestAnalyze_ViolationsDoNotAbort(t *testing.T) {
	input := "M1 0 2 A 10\nM1 1 3 B 10\n"
	a, err := Analyze(strings.NewReader(input), model.ModeSCH)
	if err != nil {
		t.Fatalf("semantic conflicts must not abort the pipeline: %v", err)
	}
	if len(a.Violations) == 0 {
		t.Fatal("expected the overlap to be reported")
	}
	if a.Schedule.RecordCount() != 2 {
		t.Errorf("schedule should still be fully built, got %d records", a.Schedule.RecordCount())
	}
}

func TestAnalyze_SCHHasNoGroups(t *testing.T) {
	a, err := Analyze(strings.NewReader("M1 0 1 A 10\n"), model.ModeSCH)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	if a.Groups != nil || a.OrderColors != nil {
		t.Errorf("SCH analysis must not consolidate or color orders: %+v", a)
	}
}

func TestGenerateReport_ListsTimelinesAndViolations(t *testing.T) {
	input := "M1 0 2 A 10\nM1 0 2 A 10\n"
	a, err := Analyze(strings.NewReader(input), model.ModeSCH)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	report := GenerateReport(a, false)
	for _, want := range []string{"M1", "Duplicate", "Overlap", "Legend"} {
		if !strings.Contains(report, want) {
			t.Errorf("report missing %q:\n%s", want, report)
		}
	}
}

func TestGenerateReport_CleanRunSaysNone(t *testing.T) {
	a, err := Analyze(strings.NewReader(sampleMTS), model.ModeMTS)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	report := GenerateReport(a, true)
	if !strings.Contains(report, "none") {
		t.Errorf("clean report should state there are no violations:\n%s", report)
	}
	if !strings.Contains(report, "PU0 / order B") {
		t.Errorf("MTS report should list consolidated bands:\n%s", report)
	}
}
