package shapeinference

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/types"
	"github.com/gomlx/onnxschema/types/shapes"
)

// Aliases
var (
	I32  = dtypes.Int32
	I64  = dtypes.Int64
	F32  = dtypes.Float32
	F64  = dtypes.Float64

	S = shapes.Make
)

// must1 panics if there is an error.
func must1[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

// testContext is a minimal schema.InferenceContext.
type testContext struct {
	attrs   map[string]types.AttributeValue
	inputs  []*types.Type
	outputs []*types.Type
}

func newTestContext(inputs []*types.Type, attrs ...types.AttributeValue) *testContext {
	ctx := &testContext{
		attrs:   make(map[string]types.AttributeValue),
		inputs:  inputs,
		outputs: []*types.Type{{}},
	}
	for _, attr := range attrs {
		ctx.attrs[attr.Name] = attr
	}
	return ctx
}

func (c *testContext) Attribute(name string) (types.AttributeValue, bool) {
	attr, found := c.attrs[name]
	return attr, found
}
func (c *testContext) NumInputs() int               { return len(c.inputs) }
func (c *testContext) InputType(i int) *types.Type  { return c.inputs[i] }
func (c *testContext) NumOutputs() int              { return len(c.outputs) }
func (c *testContext) OutputType(i int) *types.Type { return c.outputs[i] }

func tensorOf(shape shapes.Shape) *types.Type {
	t := types.TensorTypeOf(shape)
	return &t
}

func TestAdjustAxisToRank(t *testing.T) {
	for _, tc := range []struct{ axis, rank, want int }{
		{0, 3, 0}, {2, 3, 2}, {-1, 3, 2}, {-3, 3, 0},
	} {
		if got := must1(AdjustAxisToRank(tc.axis, tc.rank)); got != tc.want {
			t.Errorf("AdjustAxisToRank(%d, %d) = %d, want %d", tc.axis, tc.rank, got, tc.want)
		}
	}
	for _, tc := range []struct{ axis, rank int }{{3, 3}, {-4, 3}, {0, 0}} {
		if _, err := AdjustAxisToRank(tc.axis, tc.rank); err == nil {
			t.Errorf("AdjustAxisToRank(%d, %d) should have failed", tc.axis, tc.rank)
		}
	}
}

func TestHasNInputShapes(t *testing.T) {
	ranked := tensorOf(S(F32, 2))
	unranked := types.TensorType(F32)
	seq := &types.Type{Kind: types.TypeSequence}
	if !HasNInputShapes(newTestContext([]*types.Type{ranked}), 1) {
		t.Error("ranked input should have a shape")
	}
	if HasNInputShapes(newTestContext([]*types.Type{&unranked}), 1) {
		t.Error("unranked input should not have a shape")
	}
	if HasNInputShapes(newTestContext([]*types.Type{nil}), 1) {
		t.Error("missing input should not have a shape")
	}
	if HasNInputShapes(newTestContext([]*types.Type{seq}), 1) {
		t.Error("sequence input should not have a tensor shape")
	}
	if HasNInputShapes(newTestContext([]*types.Type{ranked}), 2) {
		t.Error("there is only one input")
	}
	if !HasNInputShapes(newTestContext(nil), 0) {
		t.Error("0 input shapes are always available")
	}
}

func TestPropagateElemType(t *testing.T) {
	ctx := newTestContext([]*types.Type{tensorOf(S(F64, 3))})
	if err := PropagateElemTypeFromInputToOutput(ctx, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ctx.outputs[0]; got.Kind != types.TypeTensor || got.DType != F64 || got.HasShape {
		t.Errorf("unexpected output type %s", got)
	}

	// Unknown input element type: nothing to propagate.
	unknown := types.TensorType(dtypes.InvalidDType)
	ctx = newTestContext([]*types.Type{&unknown})
	if err := PropagateElemTypeFromInputToOutput(ctx, 0, 0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ctx.outputs[0].Kind != types.TypeNotSet {
		t.Errorf("output should not be set, got %s", ctx.outputs[0])
	}

	// Non-tensor input.
	ctx = newTestContext([]*types.Type{{Kind: types.TypeSequence}})
	if err := PropagateElemTypeFromInputToOutput(ctx, 0, 0); !IsInferenceError(err) {
		t.Errorf("expected an InferenceError, got %v", err)
	}

	// Non-tensor output.
	ctx = newTestContext([]*types.Type{tensorOf(S(F64, 3))})
	ctx.outputs[0].Kind = types.TypeMap
	if err := PropagateElemTypeFromInputToOutput(ctx, 0, 0); !IsInferenceError(err) {
		t.Errorf("expected an InferenceError, got %v", err)
	}
}
