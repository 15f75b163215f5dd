package utils

import "testing"

func TestSet(t *testing.T) {
	s := MakeSet[int](3)
	if len(s) != 0 {
		t.Fatalf("MakeSet returned a non-empty set %v", s)
	}
	s.Insert(2, -1, 2)
	if len(s) != 2 {
		t.Errorf("expected 2 elements after inserting a repeated one, got %d", len(s))
	}
	for _, axis := range []int{2, -1} {
		if !s.Has(axis) {
			t.Errorf("set should have %d", axis)
		}
	}
	if s.Has(0) {
		t.Error("set should not have 0")
	}

	names := SetWith("axes", "keepdims")
	if !names.Has("keepdims") || names.Has("axis") || len(names) != 2 {
		t.Errorf("unexpected set %v", names)
	}
	if empty := SetWith[string](); len(empty) != 0 {
		t.Errorf("SetWith() should be empty, got %v", empty)
	}
}
