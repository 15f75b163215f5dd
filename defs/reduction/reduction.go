// Package reduction defines the schemas of the ONNX reduction operators: the reduce-over-axes family
// (ReduceSum, ReduceMean, ...) and the index-reduction family (ArgMax, ArgMin).
//
// All the operators of a family share one recipe, created by ReduceDocGenerator or ArgReduceDocGenerator,
// and differ only by name and documentation.
package reduction

import (
	"strings"

	"github.com/gomlx/onnxschema/internal/optypes"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/shapeinference"
	"github.com/gomlx/onnxschema/types"
	"github.com/pkg/errors"
)

// SinceVersion of the schemas defined in this package.
const SinceVersion = 1

const reduceDocTemplate = `
Computes the {name} of the input tensor's element along the provided axes. The resulted
tensor has the same rank as the input if keepdims equal 1. If keepdims equal 0, then
the resulted tensor have the reduced dimension pruned.

The above behavior is similar to numpy, with the exception that numpy default keepdims to
False instead of True.`

const argReduceDocTemplate = `
Computes the indices of the {name} elements of the input tensor's element along the
provided axis. The resulted tensor has the same rank as the input if keepdims equal 1.
If keepdims equal 0, then the resulted tensor have the reduced dimension pruned.
The type of the output tensor is integer.`

const keepDimsDescription = "Keep the reduced dimension or not, default 1 mean keep reduced dimension."

// ReduceDocGenerator returns the recipe of a reduce-over-axes operator, where name is the reduction
// computed as it reads in the documentation (e.g. "sum", "log sum exponent").
func ReduceDocGenerator(name string) schema.FillFunc {
	return func(b *schema.Builder) {
		b.SetDoc(strings.ReplaceAll(reduceDocTemplate, "{name}", name)).
			Attr("axes",
				"A list of integers, along which to reduce. The default is to reduce over "+
					"all the dimensions of the input tensor.",
				types.AttrInts, false).
			AttrDefault("keepdims", keepDimsDescription, types.IntAttr("keepdims", 1)).
			Input(0, "data", "An input tensor.", "T").
			Output(0, "reduced", "Reduced output tensor.", "T").
			TypeConstraint("T", schema.HighPrecisionNumericTypes(),
				"Constrain input and output types to high-precision numeric tensors.").
			TypeAndShapeInferenceFunction(shapeinference.InferReduce)
	}
}

// ArgReduceDocGenerator returns the recipe of an index-reduction operator, where name is the element
// whose index is selected (e.g. "max").
func ArgReduceDocGenerator(name string) schema.FillFunc {
	return func(b *schema.Builder) {
		b.SetDoc(strings.ReplaceAll(argReduceDocTemplate, "{name}", name)).
			AttrDefault("axis", "The axis in which to compute the arg indices. Default is 0.",
				types.IntAttr("axis", 0)).
			AttrDefault("keepdims", keepDimsDescription, types.IntAttr("keepdims", 1)).
			Input(0, "data", "An input tensor.", "T").
			Output(0, "reduced", "Reduced output tensor with integer data type.", "tensor(int64)").
			TypeConstraint("T", schema.AllNumericTypes(),
				"Constrain input and output types to all numeric tensors.").
			TypeAndShapeInferenceFunction(shapeinference.InferArgReduce)
	}
}

// DocNames maps each operator of this package to the name of its reduction used in the documentation.
var DocNames = map[optypes.OpType]string{
	optypes.ReduceMax:       "max",
	optypes.ReduceMin:       "min",
	optypes.ReduceSum:       "sum",
	optypes.ReduceSumSquare: "sum square",
	optypes.ReduceMean:      "mean",
	optypes.ReduceProd:      "product",
	optypes.ReduceLogSum:    "log sum",
	optypes.ReduceLogSumExp: "log sum exponent",
	optypes.ReduceL1:        "L1 norm",
	optypes.ReduceL2:        "L2 norm",

	optypes.ArgMax: "max",
	optypes.ArgMin: "min",
}

// Registerer is where schemas are registered to, usually an onnxschema.Registry.
type Registerer interface {
	Register(s *schema.OpSchema) error
}

// Schema builds the schema of one of the reduction operators.
func Schema(op optypes.OpType) (*schema.OpSchema, error) {
	docName := DocNames[op]
	var fill schema.FillFunc
	switch {
	case optypes.ReduceOperations.Has(op):
		fill = ReduceDocGenerator(docName)
	case optypes.ArgReduceOperations.Has(op):
		fill = ArgReduceDocGenerator(docName)
	default:
		return nil, errors.Errorf("%s is not a reduction operator", op)
	}
	return schema.New(op.String()).SinceVersion(SinceVersion).FillUsing(fill).Build()
}

// Register the schemas of all the reduction operators, in OpType order.
func Register(r Registerer) error {
	for op := optypes.Invalid + 1; op < optypes.Last; op++ {
		if !optypes.ReduceOperations.Has(op) && !optypes.ArgReduceOperations.Has(op) {
			continue
		}
		s, err := Schema(op)
		if err != nil {
			return err
		}
		if err := r.Register(s); err != nil {
			return errors.WithMessagef(err, "while registering reduction operator %s", op)
		}
	}
	return nil
}
