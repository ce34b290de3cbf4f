package gantt

import (
	"strings"
	"testing"

	"ganttview/internal/model"
)

func TestConsolidate_GroupsByUnitAndOrder(t *testing.T) {
	s := parseString(t, sampleMTS, model.ModeMTS)
	groups := Consolidate(s)

	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[0].ProcessingUnit != "PU0" || groups[0].Order != "B" {
		t.Errorf("unexpected first group: %+v", groups[0])
	}
	if groups[1].ProcessingUnit != "PU2" || groups[1].Order != "B" {
		t.Errorf("unexpected second group: %+v", groups[1])
	}
}

func TestConsolidate_PreservesEveryRecord(t *testing.T) {
	input := "PU0_M0_A 0 1 Mix 10\n" +
		"PU0_M1_A 0 1 Mix 12\n" +
		"PU0_M0_A 1 2 Dry 10\n" +
		"PU1_M0_A 0 3 Mix 8\n" +
		"PU0_M0_B 0 2 Mix 9\n"
	s := parseString(t, input, model.ModeMTS)
	groups := Consolidate(s)

	total := 0
	for _, g := range groups {
		total += g.RecordCount()
	}
	if total != s.RecordCount() {
		t.Fatalf("consolidation lost records: %d in, %d out", s.RecordCount(), total)
	}
}

func TestConsolidate_SubLaneOrderIsLexicographic(t *testing.T) {
	// M10 sorts before M2 lexicographically; the layout contract is
	// determinism, not numeric ordering.
	input := "PU0_M2_A 0 1 Mix 10\n" +
		"PU0_M10_A 1 2 Mix 10\n" +
		"PU0_M1_A 2 3 Mix 10\n"
	s := parseString(t, input, model.ModeMTS)
	groups := Consolidate(s)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}

	want := []string{"M1", "M10", "M2"}
	for i, lane := range groups[0].Lanes {
		if lane.Machine != want[i] {
			t.Errorf("lane %d: expected %s, got %s", i, want[i], lane.Machine)
		}
		if lane.Index != i {
			t.Errorf("lane %d: index %d", i, lane.Index)
		}
	}
}

func TestConsolidate_DeterministicAcrossInputOrder(t *testing.T) {
	lines := []string{
		"PU0_M0_A 0 1 Mix 10",
		"PU0_M1_A 1 2 Dry 10",
		"PU1_M0_B 0 1 Mix 10",
	}
	shuffled := []string{lines[2], lines[0], lines[1]}

	g1 := Consolidate(parseString(t, strings.Join(lines, "\n")+"\n", model.ModeMTS))
	g2 := Consolidate(parseString(t, strings.Join(shuffled, "\n")+"\n", model.ModeMTS))

	if len(g1) != len(g2) {
		t.Fatalf("group counts differ: %d vs %d", len(g1), len(g2))
	}
	for i := range g1 {
		if g1[i].ProcessingUnit != g2[i].ProcessingUnit || g1[i].Order != g2[i].Order {
			t.Errorf("group %d differs: %+v vs %+v", i, g1[i], g2[i])
		}
		for j := range g1[i].Lanes {
			if g1[i].Lanes[j].Machine != g2[i].Lanes[j].Machine {
				t.Errorf("group %d lane %d differs: %s vs %s",
					i, j, g1[i].Lanes[j].Machine, g2[i].Lanes[j].Machine)
			}
		}
	}
}

func TestConsolidate_OrdersAreNeverMerged(t *testing.T) {
	// Same processing unit under two orders: one group per order.
	input := "PU0_M0_A 0 1 Mix 10\n" +
		"PU0_M0_B 1 2 Mix 10\n"
	s := parseString(t, input, model.ModeMTS)
	groups := Consolidate(s)
	if len(groups) != 2 {
		t.Fatalf("expected one group per order, got %d", len(groups))
	}
	if groups[0].Order == groups[1].Order {
		t.Errorf("groups share an order: %+v", groups)
	}
}

func TestConsolidate_NilForSCH(t *testing.T) {
	s := parseString(t, "M1 0 1 Mix 10\n", model.ModeSCH)
	if groups := Consolidate(s); groups != nil {
		t.Fatalf("SCH schedules must not consolidate, got %v", groups)
	}
}

func TestStackedSlots_SharedSlotSumsBatch(t *testing.T) {
	lane := model.SubLane{
		Machine: "M0",
		Records: []model.TaskRecord{
			rec("PU0_M0_A", 2, 3, "Dry", 5, 3),
			rec("PU0_M0_A", 0, 1, "Mix", 10, 1),
			rec("PU0_M0_A", 0, 1, "Heat", 20, 2),
		},
	}
	slots := StackedSlots(lane)
	if len(slots) != 2 {
		t.Fatalf("expected 2 slots, got %d", len(slots))
	}
	if slots[0].Start != 0 || slots[0].End != 1 {
		t.Errorf("slots must be sorted by start, got %+v", slots[0])
	}
	if len(slots[0].Records) != 2 || slots[0].BatchTotal != 30 {
		t.Errorf("shared slot should hold both records with summed batch, got %+v", slots[0])
	}
	if slots[1].BatchTotal != 5 {
		t.Errorf("single slot batch total wrong: %+v", slots[1])
	}
}
