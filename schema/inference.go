package schema

import "github.com/gomlx/onnxschema/types"

// InferenceContext is the view of a graph node shape inference works on.
//
// Each invocation of an InferenceFunction gets its own context.
type InferenceContext interface {
	// Attribute returns the attribute value set for the node, or ok=false if it is absent.
	// Absence of an optional attribute is never an error.
	Attribute(name string) (value types.AttributeValue, ok bool)

	// NumInputs is the number of inputs given to the node.
	NumInputs() int

	// InputType returns the type of the i-th input, or nil if the input is missing.
	InputType(i int) *types.Type

	// NumOutputs is the number of outputs of the node.
	NumOutputs() int

	// OutputType returns the mutable type of the i-th output, to be filled by the inference function.
	OutputType(i int) *types.Type
}

// InferenceFunction derives the output types of a node from its inputs and attributes, setting them in
// the context output slots.
//
// It must be a pure function of the context: it doesn't block, do I/O, or keep state across calls.
// Insufficient information (e.g. unknown input shapes) is not an error: the function leaves the
// corresponding output information unset. An error is only returned for contract violations, in which
// case the output shape is left unset.
type InferenceFunction func(ctx InferenceContext) error
