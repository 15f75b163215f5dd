// Package types defines the values exchanged between operator schemas and the nodes of a graph being
// validated: the type of graph values (Type), and attribute values (AttributeValue).
package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/internal/utils"
	"github.com/gomlx/onnxschema/types/shapes"
)

// TypeKind enumerates the kinds of values flowing in a graph.
type TypeKind int

//go:generate go tool enumer -type=TypeKind -trimprefix=Type -output=gen_typekind_enumer.go types.go

const (
	// TypeNotSet is the kind of output slots not yet filled by shape inference.
	TypeNotSet TypeKind = iota

	// TypeTensor is a dense tensor, with an element type and possibly a shape.
	TypeTensor

	TypeSequence
	TypeMap
)

// Type of a value in the graph.
//
// For tensors, DType is the element type (dtypes.InvalidDType if not known yet) and, if HasShape is true,
// Dimensions holds the shape. A tensor with HasShape false has unknown rank, which is different from a
// scalar (HasShape true, no dimensions).
type Type struct {
	Kind       TypeKind
	DType      dtypes.DType
	Dimensions []shapes.Dim
	HasShape   bool
}

// TensorType returns the type of a tensor with the given element type and unknown shape.
func TensorType(dtype dtypes.DType) Type {
	return Type{Kind: TypeTensor, DType: dtype}
}

// TensorTypeOf returns the type of a tensor with the given shape.
func TensorTypeOf(shape shapes.Shape) Type {
	return Type{Kind: TypeTensor, DType: shape.DType, Dimensions: slices.Clone(shape.Dimensions), HasShape: true}
}

// IsTensor returns whether the type is a tensor.
func (t Type) IsTensor() bool { return t.Kind == TypeTensor }

// Shape returns the tensor shape. It is only meaningful if HasShape is true.
func (t Type) Shape() shapes.Shape {
	return shapes.MakeDims(t.DType, t.Dimensions...)
}

// Rank returns the rank of the tensor, or -1 if the shape is not known.
func (t Type) Rank() int {
	if !t.HasShape {
		return -1
	}
	return len(t.Dimensions)
}

// SetElemType sets the element type, turning the type into a tensor.
func (t *Type) SetElemType(dtype dtypes.DType) {
	t.Kind = TypeTensor
	t.DType = dtype
}

// SetShape sets the whole shape at once, turning the type into a tensor.
// The dimensions slice is owned by the Type afterward.
func (t *Type) SetShape(dimensions []shapes.Dim) {
	t.Kind = TypeTensor
	t.Dimensions = dimensions
	t.HasShape = true
}

// Clone returns a deep copy of the type.
func (t Type) Clone() Type {
	t2 := t
	t2.Dimensions = slices.Clone(t.Dimensions)
	return t2
}

// Equal returns whether both types have the same kind, element type and shape.
func (t Type) Equal(t2 Type) bool {
	return t.Kind == t2.Kind && t.DType == t2.DType && t.HasShape == t2.HasShape &&
		slices.Equal(t.Dimensions, t2.Dimensions)
}

// String implements fmt.Stringer, e.g.: "tensor(float)[batch 3]".
func (t Type) String() string {
	switch t.Kind {
	case TypeNotSet:
		return "<not set>"
	case TypeTensor:
	default:
		return strings.ToLower(t.Kind.String())
	}
	var elem string
	if t.DType == dtypes.InvalidDType {
		elem = "tensor(?)"
	} else {
		elem = utils.TensorTypeString(t.DType)
	}
	if !t.HasShape {
		return elem
	}
	parts := make([]string, len(t.Dimensions))
	for ii, dim := range t.Dimensions {
		parts[ii] = dim.String()
	}
	return fmt.Sprintf("%s[%s]", elem, strings.Join(parts, " "))
}
