package schema

import (
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/internal/utils"
)

// TypeConstraint is a named type variable (e.g. "T"), bound to the set of element types it can take.
// All inputs and outputs referring to the same variable must have the same element type.
type TypeConstraint struct {
	Name          string
	AllowedDTypes []dtypes.DType
	Description   string
}

// Allows returns whether the dtype is one of the allowed types.
func (c TypeConstraint) Allows(dtype dtypes.DType) bool {
	return slices.Contains(c.AllowedDTypes, dtype)
}

// AllowedTypeStrings returns the allowed types as ONNX type strings, e.g. "tensor(float)".
func (c TypeConstraint) AllowedTypeStrings() []string {
	strs := make([]string, len(c.AllowedDTypes))
	for ii, dtype := range c.AllowedDTypes {
		strs[ii] = utils.TensorTypeString(dtype)
	}
	return strs
}

// String implements fmt.Stringer.
func (c TypeConstraint) String() string {
	return c.Name + " in (" + strings.Join(c.AllowedTypeStrings(), ", ") + ")"
}

// AllNumericTypes returns all integer and float element types.
func AllNumericTypes() []dtypes.DType {
	return []dtypes.DType{
		dtypes.Uint8, dtypes.Uint16, dtypes.Uint32, dtypes.Uint64,
		dtypes.Int8, dtypes.Int16, dtypes.Int32, dtypes.Int64,
		dtypes.Float16, dtypes.Float32, dtypes.Float64,
	}
}

// HighPrecisionNumericTypes returns the numeric element types of 32 bits or more, plus float16.
func HighPrecisionNumericTypes() []dtypes.DType {
	return []dtypes.DType{
		dtypes.Uint32, dtypes.Uint64,
		dtypes.Int32, dtypes.Int64,
		dtypes.Float16, dtypes.Float32, dtypes.Float64,
	}
}
