package shapes

import (
	"strconv"

	"github.com/gomlx/exceptions"
)

// Dim is the dimension of one axis of a Shape.
//
// It is either static (a concrete non-negative value), symbolic (a named dimension, like "batch", whose
// value is only known at execution time) or unknown. The zero value is an unknown dimension.
//
// Shape inference never needs the value of a non-static dimension: it only copies it by identity
// to the output, so results stay correct under partial shape knowledge.
type Dim struct {
	value  int
	param  string
	static bool
}

// Static returns a static dimension with the given value.
// It panics if value is negative.
func Static(value int) Dim {
	if value < 0 {
		exceptions.Panicf("shapes.Static(%d): dimension cannot be negative", value)
	}
	return Dim{value: value, static: true}
}

// Symbolic returns a named dimension. An empty name is the same as UnknownDim.
func Symbolic(name string) Dim {
	return Dim{param: name}
}

// UnknownDim returns a dimension of unknown value, the same as Dim{}.
func UnknownDim() Dim {
	return Dim{}
}

// IsStatic returns whether the dimension has a concrete value.
func (d Dim) IsStatic() bool { return d.static }

// IsSymbolic returns whether the dimension is a named symbolic dimension.
func (d Dim) IsSymbolic() bool { return !d.static && d.param != "" }

// IsUnknown returns whether nothing is known about the dimension.
func (d Dim) IsUnknown() bool { return !d.static && d.param == "" }

// Value returns the concrete value of a static dimension, or -1 otherwise.
func (d Dim) Value() int {
	if !d.static {
		return -1
	}
	return d.value
}

// Param returns the name of a symbolic dimension, or "" otherwise.
func (d Dim) Param() string { return d.param }

// String implements fmt.Stringer. Unknown dimensions are rendered as "?".
func (d Dim) String() string {
	switch {
	case d.static:
		return strconv.Itoa(d.value)
	case d.param != "":
		return d.param
	default:
		return "?"
	}
}

// StaticDims converts a list of values to static dimensions.
func StaticDims(values ...int) []Dim {
	dims := make([]Dim, len(values))
	for ii, v := range values {
		dims[ii] = Static(v)
	}
	return dims
}
