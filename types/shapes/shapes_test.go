package shapes

import (
	"fmt"
	"math"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/x448/float16"
)

func TestShape(t *testing.T) {
	invalidShape := Invalid()
	if invalidShape.Ok() {
		t.Error("Invalid().Ok() should be false")
	}

	shape0 := Make(dtypes.Float64)
	if !shape0.Ok() {
		t.Error("shape0.Ok() should be true")
	}
	if shape0.Rank() != 0 || !shape0.IsStatic() {
		t.Error("shape0 should be a static scalar")
	}
	if shape0.Rank() != 0 {
		t.Errorf("shape0.Rank() = %d, want 0", shape0.Rank())
	}
	if shape0.Size() != 1 {
		t.Errorf("shape0.Size() = %d, want 1", shape0.Size())
	}

	shape1 := Make(dtypes.Float32, 4, 3, 2)
	if shape1.Rank() == 0 {
		t.Error("shape1 should not be a scalar")
	}
	if shape1.Rank() != 3 {
		t.Errorf("shape1.Rank() = %d, want 3", shape1.Rank())
	}
	if shape1.Size() != 4*3*2 {
		t.Errorf("shape1.Size() = %d, want %d", shape1.Size(), 4*3*2)
	}
	if !shape1.IsStatic() {
		t.Error("shape1.IsStatic() should be true")
	}
	if got, want := shape1.String(), fmt.Sprintf("(%s)[4 3 2]", dtypes.Float32); got != want {
		t.Errorf("shape1.String() = %q, want %q", got, want)
	}

	shape2 := MakeDims(dtypes.Int64, Symbolic("batch"), Static(3), UnknownDim())
	if shape2.IsStatic() {
		t.Error("shape2.IsStatic() should be false")
	}
	if shape2.Size() != -1 {
		t.Errorf("shape2.Size() = %d, want -1", shape2.Size())
	}
	if got, want := shape2.String(), fmt.Sprintf("(%s)[batch 3 ?]", dtypes.Int64); got != want {
		t.Errorf("shape2.String() = %q, want %q", got, want)
	}
	if !shape2.Equal(shape2.Clone()) {
		t.Error("shape2 should be equal to its clone")
	}
	if shape2.Equal(MakeDims(dtypes.Int64, Symbolic("seq"), Static(3), UnknownDim())) {
		t.Error("symbolic dimensions with different names should not be equal")
	}
	if shape2.Equal(MakeDims(dtypes.Int32, Symbolic("batch"), Static(3), UnknownDim())) {
		t.Error("shapes with different dtypes should not be equal")
	}
	if !shape2.EqualDimensions(MakeDims(dtypes.Int32, Symbolic("batch"), Static(3), UnknownDim())) {
		t.Error("EqualDimensions should ignore the dtype")
	}
}

func TestDimKinds(t *testing.T) {
	static := Static(5)
	if !static.IsStatic() || static.IsSymbolic() || static.IsUnknown() || static.Value() != 5 {
		t.Errorf("Static(5) reported wrong kind: %#v", static)
	}
	symbolic := Symbolic("seq")
	if symbolic.IsStatic() || !symbolic.IsSymbolic() || symbolic.Value() != -1 || symbolic.Param() != "seq" {
		t.Errorf("Symbolic(\"seq\") reported wrong kind: %#v", symbolic)
	}
	if !(Dim{}).IsUnknown() || Symbolic("") != UnknownDim() {
		t.Error("zero Dim and Symbolic(\"\") should be unknown")
	}
	if Static(0) == UnknownDim() {
		t.Error("Static(0) should differ from an unknown dimension")
	}
	panics(t, func() { _ = Static(-1) })
}

func panics(t *testing.T, f func()) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic, but code did not panic")
		}
	}()
	f()
}


func TestDim(t *testing.T) {
	shape := Make(dtypes.Float32, 4, 3, 2)
	if d := shape.Dim(0); d != Static(4) {
		t.Errorf("shape.Dim(0) = %s, want 4", d)
	}
	if d := shape.Dim(-1); d != Static(2) {
		t.Errorf("shape.Dim(-1) = %s, want 2", d)
	}
	if d := shape.Dim(-3); d != Static(4) {
		t.Errorf("shape.Dim(-3) = %s, want 4", d)
	}
	panics(t, func() { _ = shape.Dim(3) })
	panics(t, func() { _ = shape.Dim(-4) })
}

func TestFromAnyValue(t *testing.T) {
	shape, err := FromAnyValue([]int32{1, 2, 3})
	if err != nil {
		t.Fatalf("FromAnyValue failed: %v", err)
	}
	if !shape.Equal(Make(dtypes.Int32, 3)) {
		t.Errorf("unexpected shape %s", shape)
	}

	shape, err = FromAnyValue([][][]complex64{{{1, 2, -3}, {3, 4 + 2i, -7 - 1i}}})
	if err != nil {
		t.Fatalf("FromAnyValue failed: %v", err)
	}
	if !shape.Equal(Make(dtypes.Complex64, 1, 2, 3)) {
		t.Errorf("unexpected shape %s", shape)
	}

	shape, err = FromAnyValue([][]float16.Float16{{float16.Fromfloat32(1), float16.Fromfloat32(0.5)}})
	if err != nil {
		t.Fatalf("FromAnyValue failed: %v", err)
	}
	if !shape.Equal(Make(dtypes.Float16, 1, 2)) {
		t.Errorf("unexpected shape %s", shape)
	}

	// Scalar.
	shape, err = FromAnyValue(int64(7))
	if err != nil || shape.Rank() != 0 || shape.DType != dtypes.Int64 {
		t.Errorf("FromAnyValue(int64(7)) = (%s, %v), want scalar Int64", shape, err)
	}

	// Irregular shape is not accepted:
	shape, err = FromAnyValue([][]float32{{1, 2, 3}, {4, 5}})
	if err == nil {
		t.Errorf("irregular shape should have returned an error, instead got shape %s", shape)
	}
	if _, err = FromAnyValue([]float32{}); err == nil {
		t.Error("empty slice should have returned an error")
	}
	if _, err = FromAnyValue(nil); err == nil {
		t.Error("nil value should have returned an error")
	}
}

func TestSize(t *testing.T) {
	if got := Make(dtypes.Float32, 2, 0, 3).Size(); got != 0 {
		t.Errorf("Size() of a zero-sized shape = %d, want 0", got)
	}
	if got := MakeDims(dtypes.Float32, Static(2), Symbolic("batch")).Size(); got != -1 {
		t.Errorf("Size() of a symbolic shape = %d, want -1", got)
	}
	huge := Make(dtypes.Float32, math.MaxInt/2, 3)
	if got := huge.Size(); got != -1 {
		t.Errorf("Size() of %s = %d, want -1 for an overflow", huge, got)
	}
	if got := Make(dtypes.Float32, math.MaxInt, 0).Size(); got != 0 {
		t.Errorf("Size() with a 0 dimension = %d, want 0", got)
	}
}
