package model

import "testing"

func TestHasViolation(t *testing.T) {
	m1 := MachineKey{Mode: ModeSCH, Name: "M1"}
	m2 := MachineKey{Mode: ModeSCH, Name: "M2"}
	vs := []Violation{
		{Kind: KindOverlap, Key: m1},
	}

	if !HasViolation(vs, m1) {
		t.Error("M1 has a violation and must be reported")
	}
	if HasViolation(vs, m2) {
		t.Error("M2 is clean and must not be reported")
	}
	if HasViolation(nil, m1) {
		t.Error("an empty set has no violations")
	}
}
