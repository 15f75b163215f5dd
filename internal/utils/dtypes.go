package utils

import (
	"fmt"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// DTypeToONNX returns the ONNX name of the element type, as used in type strings like "tensor(float)".
func DTypeToONNX(dtype dtypes.DType) string {
	switch dtype {
	case dtypes.F64:
		return "double"
	case dtypes.F32:
		return "float"
	case dtypes.F16:
		return "float16"
	case dtypes.BFloat16:
		return "bfloat16"
	case dtypes.S64:
		return "int64"
	case dtypes.S32:
		return "int32"
	case dtypes.S16:
		return "int16"
	case dtypes.S8:
		return "int8"
	case dtypes.U64:
		return "uint64"
	case dtypes.U32:
		return "uint32"
	case dtypes.U16:
		return "uint16"
	case dtypes.U8:
		return "uint8"
	case dtypes.Bool:
		return "bool"
	case dtypes.Complex64:
		return "complex64"
	case dtypes.Complex128:
		return "complex128"
	default:
		return fmt.Sprintf("unknown_dtype<%s>", dtype.String())
	}
}

var onnxNameToDType = map[string]dtypes.DType{
	"double":     dtypes.F64,
	"float":      dtypes.F32,
	"float16":    dtypes.F16,
	"bfloat16":   dtypes.BFloat16,
	"int64":      dtypes.S64,
	"int32":      dtypes.S32,
	"int16":      dtypes.S16,
	"int8":       dtypes.S8,
	"uint64":     dtypes.U64,
	"uint32":     dtypes.U32,
	"uint16":     dtypes.U16,
	"uint8":      dtypes.U8,
	"bool":       dtypes.Bool,
	"complex64":  dtypes.Complex64,
	"complex128": dtypes.Complex128,
}

// DTypeFromONNX parses an ONNX element type name ("float", "int64", ...).
func DTypeFromONNX(name string) (dtypes.DType, error) {
	dtype, found := onnxNameToDType[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return dtypes.InvalidDType, errors.Errorf("unknown ONNX element type %q", name)
	}
	return dtype, nil
}

// TensorTypeString returns the ONNX type string of a tensor of the given element type, e.g. "tensor(float)".
func TensorTypeString(dtype dtypes.DType) string {
	return "tensor(" + DTypeToONNX(dtype) + ")"
}

// ParseTensorTypeString parses a concrete ONNX tensor type string like "tensor(int64)".
// It returns ok=false if typeStr doesn't have the "tensor(...)" form.
func ParseTensorTypeString(typeStr string) (dtype dtypes.DType, ok bool, err error) {
	inner, found := strings.CutPrefix(typeStr, "tensor(")
	if !found || !strings.HasSuffix(inner, ")") {
		return dtypes.InvalidDType, false, nil
	}
	dtype, err = DTypeFromONNX(strings.TrimSuffix(inner, ")"))
	if err != nil {
		return dtypes.InvalidDType, true, errors.WithMessagef(err, "invalid tensor type %q", typeStr)
	}
	return dtype, true, nil
}
