package types

import (
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/types/shapes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"
)

func TestType(t *testing.T) {
	var notSet Type
	assert.Equal(t, TypeNotSet, notSet.Kind)
	assert.Equal(t, "<not set>", notSet.String())
	assert.Equal(t, -1, notSet.Rank())

	unranked := TensorType(dtypes.Float32)
	assert.True(t, unranked.IsTensor())
	assert.False(t, unranked.HasShape)
	assert.Equal(t, "tensor(float)", unranked.String())

	ranked := TensorTypeOf(shapes.MakeDims(dtypes.Int64, shapes.Symbolic("batch"), shapes.Static(3)))
	assert.Equal(t, 2, ranked.Rank())
	assert.Equal(t, "tensor(int64)[batch 3]", ranked.String())
	assert.True(t, ranked.Equal(ranked.Clone()))
	assert.False(t, ranked.Equal(unranked))

	scalar := TensorTypeOf(shapes.Make(dtypes.Float64))
	assert.Equal(t, 0, scalar.Rank())
	assert.Equal(t, 0, scalar.Shape().Rank())

	var slot Type
	slot.SetElemType(dtypes.Int64)
	slot.SetShape(shapes.StaticDims(5, 1))
	assert.Equal(t, "tensor(int64)[5 1]", slot.String())

	assert.Equal(t, "sequence", Type{Kind: TypeSequence}.String())
}

func TestKindEnums(t *testing.T) {
	kind, err := TypeKindString("tensor")
	require.NoError(t, err)
	assert.Equal(t, TypeTensor, kind)

	attrType, err := AttrTypeString("Ints")
	require.NoError(t, err)
	assert.Equal(t, AttrInts, attrType)
	assert.Equal(t, "Int", AttrInt.String())
	assert.False(t, AttrType(100).IsAAttrType())
}

func TestAttributeValue(t *testing.T) {
	axes := IntsAttr("axes", -1, 0)
	assert.Equal(t, AttrInts, axes.Type)
	assert.Equal(t, []int{-1, 0}, axes.AsInts())
	assert.Equal(t, "axes=[-1 0]", axes.String())

	// Clone must not share the list.
	clone := axes.Clone()
	clone.Ints[0] = 7
	assert.Equal(t, int64(-1), axes.Ints[0])

	renamed := IntAttr("keepdims", 1).WithName("keep")
	assert.Equal(t, "keep=1", renamed.String())

	assert.NotNil(t, IntsAttr("axes").Ints, "an empty list is still a set value")
	assert.Equal(t, `mode="constant"`, StringAttr("mode", "constant").String())
}

func TestNewTensor(t *testing.T) {
	tensor, err := NewTensor([][]float16.Float16{
		{float16.Fromfloat32(1), float16.Fromfloat32(2), float16.Fromfloat32(3)},
		{float16.Fromfloat32(4), float16.Fromfloat32(5), float16.Fromfloat32(6)},
	})
	require.NoError(t, err)
	assert.True(t, tensor.Shape.Equal(shapes.Make(dtypes.Float16, 2, 3)))

	attr := TensorAttr("value", tensor)
	assert.Equal(t, AttrTensor, attr.Type)

	_, err = NewTensor([]string{"a"})
	require.Error(t, err)
}
