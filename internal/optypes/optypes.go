// Package optypes defines OpType and lists the operators with registered schemas.
package optypes

import (
	"github.com/gomlx/onnxschema/internal/utils"
	"github.com/pkg/errors"
)

// OpType is an enum of the ONNX operators this module registers schemas for.
// OpType.String() is the ONNX operator name.
type OpType int

//go:generate go tool enumer -type=OpType optypes.go

const (
	Invalid OpType = iota

	ReduceMax
	ReduceMin
	ReduceSum
	ReduceSumSquare
	ReduceMean
	ReduceProd
	ReduceLogSum
	ReduceLogSumExp
	ReduceL1
	ReduceL2

	ArgMax
	ArgMin

	// Last should always be kept the last, it is used as a counter/marker for iterating over all operators.
	Last
)

var (
	// ReduceOperations use the list-valued "axes" reduction contract.
	ReduceOperations = utils.SetWith(
		ReduceMax,
		ReduceMin,
		ReduceSum,
		ReduceSumSquare,
		ReduceMean,
		ReduceProd,
		ReduceLogSum,
		ReduceLogSumExp,
		ReduceL1,
		ReduceL2,
	)

	// ArgReduceOperations use the single "axis" index-reduction contract.
	ArgReduceOperations = utils.SetWith(
		ArgMax,
		ArgMin,
	)
)

// snakeCaseNames maps the snake_case version of the operator names back to the OpType.
var snakeCaseNames = func() map[string]OpType {
	m := make(map[string]OpType, int(Last))
	for op := Invalid + 1; op < Last; op++ {
		m[op.SnakeCase()] = op
	}
	return m
}()

// SnakeCase returns the operator name in snake case, e.g. "reduce_log_sum_exp".
func (op OpType) SnakeCase() string {
	return utils.ToSnakeCase(op.String())
}

// FromName returns the OpType for the given name. It accepts the ONNX name (case-insensitive)
// or its snake case version.
func FromName(name string) (OpType, error) {
	if op, found := snakeCaseNames[name]; found {
		return op, nil
	}
	op, err := OpTypeString(name)
	if err != nil || op == Invalid || op == Last {
		return Invalid, errors.Errorf("unknown operator %q", name)
	}
	return op, nil
}
