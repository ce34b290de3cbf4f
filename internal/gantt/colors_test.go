package gantt

import (
	"fmt"
	"testing"

	"ganttview/internal/model"
)

func TestAssignColors_PureFunctionOfLabelSet(t *testing.T) {
	a := AssignColors([]string{"Mix", "Dry", "Heat"})
	b := AssignColors([]string{"Heat", "Mix", "Dry", "Mix"})

	if len(a) != 3 || len(b) != 3 {
		t.Fatalf("expected 3 entries, got %d and %d", len(a), len(b))
	}
	for label, color := range a {
		if b[label] != color {
			t.Errorf("label %s: %s vs %s across input orders", label, color, b[label])
		}
	}
}

func TestAssignColors_SortedAssignment(t *testing.T) {
	m := AssignColors([]string{"B", "A"})
	if m["A"] != DefaultPalette[0] {
		t.Errorf("A should take the first palette color, got %s", m["A"])
	}
	if m["B"] != DefaultPalette[1] {
		t.Errorf("B should take the second palette color, got %s", m["B"])
	}
}

func TestAssignColors_CyclesWhenPaletteExhausted(t *testing.T) {
	labels := make([]string, len(DefaultPalette)+2)
	for i := range labels {
		labels[i] = fmt.Sprintf("op%02d", i)
	}
	m := AssignColors(labels)
	if len(m) != len(labels) {
		t.Fatalf("expected %d entries, got %d", len(labels), len(m))
	}
	if m["op00"] != m[fmt.Sprintf("op%02d", len(DefaultPalette))] {
		t.Errorf("cycling should reuse the first palette color")
	}
}

func TestAssignPalette_Override(t *testing.T) {
	palette := []model.Color{"#111111", "#222222"}
	m := AssignPalette([]string{"x", "y", "z"}, palette)
	if m["x"] != "#111111" || m["y"] != "#222222" || m["z"] != "#111111" {
		t.Errorf("unexpected override assignment: %v", m)
	}
}

func TestAssignPalette_EmptyFallsBackToDefault(t *testing.T) {
	m := AssignPalette([]string{"a"}, nil)
	if m["a"] != DefaultPalette[0] {
		t.Errorf("empty palette should fall back to the default, got %s", m["a"])
	}
}
