package shapeinference

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types"
	"github.com/gomlx/onnxschema/types/shapes"
)

// IndexDType is the element type of the output of index-reduction operators (ArgMax, ArgMin).
const IndexDType = dtypes.Int64

// ArgReduceShape returns the shape resulting from an index-reduction (ArgMax, ArgMin) of operand along axis.
//
// A negative axis is counted from the end (axis + rank). The reduced axis becomes a dimension of size 1 if
// keepDims is exactly 1, and is removed otherwise. The output dtype is always IndexDType.
func ArgReduceShape(operand shapes.Shape, axis int, keepDims int64) (output shapes.Shape, err error) {
	rank := operand.Rank()
	adjustedAxis, err := AdjustAxisToRank(axis, rank)
	if err != nil {
		return shapes.Invalid(), inferenceErrorf("invalid axis=%d for index-reduction of %s: %v", axis, operand, err)
	}
	dims := make([]shapes.Dim, 0, rank)
	for i, dim := range operand.Dimensions {
		if i != adjustedAxis {
			dims = append(dims, dim)
			continue
		}
		if keepDims == 1 {
			dims = append(dims, shapes.Static(1))
		}
	}
	return shapes.Shape{DType: IndexDType, Dimensions: dims}, nil
}

// InferArgReduce is the schema.InferenceFunction of the index-reduction operators (ArgMax, ArgMin).
//
// The output element type is forced to IndexDType, independent of the input element type, if the output
// slot is not set or is a tensor. The output shape is only set if the input shape is known, using the
// "axis" (int, default 0) and "keepdims" (int, default 1) attributes. See ArgReduceShape.
func InferArgReduce(ctx schema.InferenceContext) error {
	output, err := outputSlot(ctx, 0)
	if err != nil {
		return err
	}
	if output.Kind == types.TypeNotSet || output.Kind == types.TypeTensor {
		output.SetElemType(IndexDType)
	}
	if !HasNInputShapes(ctx, 1) {
		return nil
	}
	axis, err := intAttrOr(ctx, "axis", 0)
	if err != nil {
		return err
	}
	keepDims, err := intAttrOr(ctx, "keepdims", 1)
	if err != nil {
		return err
	}
	reduced, err := ArgReduceShape(ctx.InputType(0).Shape(), int(axis), keepDims)
	if err != nil {
		return err
	}
	output.SetShape(reduced.Dimensions)
	return nil
}
