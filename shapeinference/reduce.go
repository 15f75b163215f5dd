package shapeinference

import (
	"github.com/gomlx/onnxschema/internal/utils"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types/shapes"
)

// ReduceShape returns the shape resulting from reducing operand over the given axes.
//
// Negative axes are counted from the end (axis + rank). An empty axes list means all axes are reduced.
// Repeated axes are accepted. Each reduced axis becomes a dimension of size 1 if keepDims is exactly 1,
// and is removed from the output otherwise. Non-reduced dimensions, static or not, are copied as is.
//
// The output dtype is the same as the operand's. axes themselves are not modified.
func ReduceShape(operand shapes.Shape, axes []int, keepDims int64) (output shapes.Shape, err error) {
	rank := operand.Rank()
	axesSet := utils.MakeSet[int](len(axes))
	for i, axis := range axes {
		adjustedAxis, err := AdjustAxisToRank(axis, rank)
		if err != nil {
			return shapes.Invalid(), inferenceErrorf("invalid value for axes[%d]=%d for reduction of %s: %v", i, axis, operand, err)
		}
		axesSet.Insert(adjustedAxis)
	}

	reduceAll := len(axes) == 0
	dims := make([]shapes.Dim, 0, rank)
	for axis, dim := range operand.Dimensions {
		if !reduceAll && !axesSet.Has(axis) {
			dims = append(dims, dim)
			continue
		}
		if keepDims == 1 {
			dims = append(dims, shapes.Static(1))
		}
	}
	return shapes.Shape{DType: operand.DType, Dimensions: dims}, nil
}

// InferReduce is the schema.InferenceFunction of the reduce-over-axes operators (ReduceSum, ReduceMean, ...).
//
// It reads the optional "axes" (list of ints) and "keepdims" (int, default 1) attributes. The element type
// of the output is the one of input #0; the output shape is only set if the input shape is known.
// See ReduceShape.
func InferReduce(ctx schema.InferenceContext) error {
	if err := PropagateElemTypeFromInputToOutput(ctx, 0, 0); err != nil {
		return err
	}
	if !HasNInputShapes(ctx, 1) {
		return nil
	}
	keepDims, err := intAttrOr(ctx, "keepdims", 1)
	if err != nil {
		return err
	}
	axes, err := intsAttr(ctx, "axes")
	if err != nil {
		return err
	}
	output, err := ReduceShape(ctx.InputType(0).Shape(), axes, keepDims)
	if err != nil {
		return err
	}
	outputType, err := outputSlot(ctx, 0)
	if err != nil {
		return err
	}
	outputType.SetShape(output.Dimensions)
	return nil
}
