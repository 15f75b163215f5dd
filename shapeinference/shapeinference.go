// Package shapeinference calculates the shapes and element types resulting from operations, and validates
// their parameters.
//
// It has two flavors of functions: pure shape functions (like ReduceShape) that take and return
// shapes.Shape, and inference functions (like InferReduce) that implement schema.InferenceFunction,
// reading attributes and input types from a schema.InferenceContext and filling its output slots.
//
// Inference functions never consider missing information an error: if the input shapes are not known
// yet, only the element type is derived. A contract violation (e.g. an axis out of range) is returned
// as an *InferenceError, and the output shape is left unset.
package shapeinference

import (
	"fmt"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types"
	"github.com/pkg/errors"
)

// InferenceError is returned by shape inference when a node violates the contract of its operator.
type InferenceError struct {
	Msg string
}

// Error implements the error interface.
func (e *InferenceError) Error() string {
	return "shape inference: " + e.Msg
}

func inferenceErrorf(format string, args ...any) error {
	return errors.WithStack(&InferenceError{Msg: fmt.Sprintf(format, args...)})
}

// IsInferenceError returns whether err is or wraps an *InferenceError.
func IsInferenceError(err error) bool {
	var inferenceErr *InferenceError
	return errors.As(err, &inferenceErr)
}

// AdjustAxisToRank returns a positive axis, adjusting negative numbers to the correct rank.
func AdjustAxisToRank(axis, rank int) (int, error) {
	if axis < -rank || axis >= rank {
		return -1, errors.Errorf("axis %d is out of range for the rank %d", axis, rank)
	}
	if axis < 0 {
		axis += rank
	}
	return axis, nil
}

// HasNInputShapes returns whether the first n inputs of the node are tensors with known shape.
func HasNInputShapes(ctx schema.InferenceContext, n int) bool {
	if ctx.NumInputs() < n {
		return false
	}
	for i := range n {
		input := ctx.InputType(i)
		if input == nil || !input.IsTensor() || !input.HasShape {
			return false
		}
	}
	return true
}

// PropagateElemTypeFromInputToOutput sets the element type of the output to the one of the input.
//
// A missing input, or an input with unknown element type, leaves the output untouched. It returns an error
// if the input or the output are not tensors.
func PropagateElemTypeFromInputToOutput(ctx schema.InferenceContext, inputIndex, outputIndex int) error {
	if inputIndex >= ctx.NumInputs() {
		return nil
	}
	input := ctx.InputType(inputIndex)
	if input == nil || input.Kind == types.TypeNotSet {
		return nil
	}
	if !input.IsTensor() {
		return inferenceErrorf("input #%d expected to have tensor type, got %s", inputIndex, input)
	}
	output, err := outputSlot(ctx, outputIndex)
	if err != nil {
		return err
	}
	if output.Kind != types.TypeNotSet && output.Kind != types.TypeTensor {
		return inferenceErrorf("output #%d expected to have tensor type, got %s", outputIndex, output)
	}
	if input.DType == dtypes.InvalidDType {
		return nil
	}
	output.SetElemType(input.DType)
	return nil
}

func outputSlot(ctx schema.InferenceContext, outputIndex int) (*types.Type, error) {
	if outputIndex >= ctx.NumOutputs() {
		return nil, inferenceErrorf("node has %d outputs, output #%d is missing", ctx.NumOutputs(), outputIndex)
	}
	output := ctx.OutputType(outputIndex)
	if output == nil {
		return nil, inferenceErrorf("output #%d is missing", outputIndex)
	}
	return output, nil
}

// intAttrOr returns the value of an integer attribute, or defaultValue if it is absent.
func intAttrOr(ctx schema.InferenceContext, name string, defaultValue int64) (int64, error) {
	attr, found := ctx.Attribute(name)
	if !found {
		return defaultValue, nil
	}
	if attr.Type != types.AttrInt {
		return 0, inferenceErrorf("attribute %q must be an integer, got %s", name, attr.Type)
	}
	return attr.I, nil
}

// intsAttr returns the value of an integer list attribute, or nil if it is absent.
func intsAttr(ctx schema.InferenceContext, name string) ([]int, error) {
	attr, found := ctx.Attribute(name)
	if !found {
		return nil, nil
	}
	if attr.Type != types.AttrInts {
		return nil, inferenceErrorf("attribute %q must be a list of integers, got %s", name, attr.Type)
	}
	return attr.AsInts(), nil
}
