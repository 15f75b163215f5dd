// Package schema defines the contract of an operator: its attributes, inputs, outputs, type constraints
// and the shape/type inference function called during graph validation.
//
// An OpSchema is created with a Builder, once at start-up, and is immutable afterward -- it can be read
// concurrently without locking. Example:
//
//	s, err := schema.New("ReduceSum").
//		SetDoc("Computes the sum of the input tensor's element along the provided axes.").
//		Attr("axes", "Axes to reduce.", types.AttrInts, false).
//		AttrDefault("keepdims", "Keep the reduced dimension or not.", types.IntAttr("", 1)).
//		Input(0, "data", "An input tensor.", "T").
//		Output(0, "reduced", "Reduced output tensor.", "T").
//		TypeConstraint("T", schema.HighPrecisionNumericTypes(), "Constrain input and output types.").
//		TypeAndShapeInferenceFunction(shapeinference.InferReduce).
//		Build()
package schema
