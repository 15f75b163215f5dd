// Package shapes defines Shape and Dim, the static description of a tensor used by shape inference.
//
// A Shape holds the element type (DType, from github.com/gomlx/gopjrt/dtypes) and the ordered
// dimensions of a tensor. Each dimension (Dim) may be static, symbolic or unknown, since graphs are
// validated before the actual sizes are known.
//
// ## Glossary
//
//   - Rank: number of axes (dimensions) of a tensor.
//   - Axis: the index of a dimension on a multidimensional tensor. We try to refer to a dimension index
//     as "axis" (plural axes), and its size as its dimension.
//   - Dimension: the size of a tensor in one of its axes.
//   - DType: the data type of the unit element in a tensor.
//   - Scalar: a shape where there are no axes, only a single value of the associated DType.
package shapes

import (
	"fmt"
	"math"
	"slices"
	"strings"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
)

// Shape represents the shape of a tensor: its element type and dimensions.
//
// Use Make or MakeDims to create a new shape.
type Shape struct {
	DType      dtypes.DType
	Dimensions []Dim
}

// Make returns a Shape with the given dtype and static dimensions.
// It panics if any of the dimensions is negative.
func Make(dtype dtypes.DType, dimensions ...int) Shape {
	return Shape{DType: dtype, Dimensions: StaticDims(dimensions...)}
}

// MakeDims returns a Shape with the given dtype and dimensions, which can be static, symbolic or unknown.
func MakeDims(dtype dtypes.DType, dimensions ...Dim) Shape {
	return Shape{DType: dtype, Dimensions: slices.Clone(dimensions)}
}

// Invalid returns an invalid shape.
//
// Invalid().Ok() == false.
func Invalid() Shape {
	return Shape{DType: dtypes.InvalidDType}
}

// Ok returns whether this is a valid Shape. A "zero" shape, that is just instantiating it with Shape{} will be invalid.
func (s Shape) Ok() bool { return s.DType != dtypes.InvalidDType }

// Rank of the shape, that is, the number of dimensions.
func (s Shape) Rank() int { return len(s.Dimensions) }

// IsStatic returns whether all dimensions are static.
func (s Shape) IsStatic() bool {
	for _, dim := range s.Dimensions {
		if !dim.IsStatic() {
			return false
		}
	}
	return true
}

// Dim returns the dimension of the given axis. axis can take negative numbers, in which
// case it counts as starting from the end -- so axis=-1 refers to the last axis.
// Like with a slice indexing, it panics for an out-of-bound axis.
func (s Shape) Dim(axis int) Dim {
	adjustedAxis := axis
	if adjustedAxis < 0 {
		adjustedAxis += s.Rank()
	}
	if adjustedAxis < 0 || adjustedAxis >= s.Rank() {
		exceptions.Panicf("Shape.Dim(%d) out-of-bounds for rank %d (shape=%s)", axis, s.Rank(), s)
	}
	return s.Dimensions[adjustedAxis]
}

// Size returns the number of elements of DType needed for this shape: the product of all dimensions.
// It returns -1 if any of the dimensions is not static, or if the product overflows an int.
func (s Shape) Size() (size int) {
	size = 1
	for _, d := range s.Dimensions {
		if !d.IsStatic() {
			return -1
		}
		value := d.Value()
		if value != 0 && size > math.MaxInt/value {
			return -1
		}
		size *= value
	}
	return
}

// String implements stringer, pretty-prints the shape, e.g.: "(Float32)[batch 3 ?]".
func (s Shape) String() string {
	if s.Rank() == 0 {
		return fmt.Sprintf("(%s)", s.DType)
	}
	parts := make([]string, len(s.Dimensions))
	for ii, dim := range s.Dimensions {
		parts[ii] = dim.String()
	}
	return fmt.Sprintf("(%s)[%s]", s.DType, strings.Join(parts, " "))
}

// Equal compares two shapes for equality: dtype and dimensions are compared.
// Symbolic dimensions are equal if they have the same name, unknown dimensions are only equal to
// other unknown dimensions.
func (s Shape) Equal(s2 Shape) bool {
	if s.DType != s2.DType {
		return false
	}
	return s.EqualDimensions(s2)
}

// EqualDimensions compares two shapes for equality of dimensions. Dtypes can be different.
func (s Shape) EqualDimensions(s2 Shape) bool {
	return slices.Equal(s.Dimensions, s2.Dimensions)
}

// Clone returns a new deep copy of the shape.
func (s Shape) Clone() (s2 Shape) {
	s2.DType = s.DType
	s2.Dimensions = slices.Clone(s.Dimensions)
	return
}
