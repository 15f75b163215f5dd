package types

import (
	"fmt"
	"slices"
	"strings"

	"github.com/gomlx/onnxschema/types/shapes"
	"github.com/pkg/errors"
)

// AttrType enumerates the kinds of values an operator attribute can hold.
type AttrType int

//go:generate go tool enumer -type=AttrType -trimprefix=Attr -output=gen_attrtype_enumer.go attributes.go

const (
	AttrUndefined AttrType = iota
	AttrFloat
	AttrInt
	AttrString
	AttrTensor
	AttrFloats
	AttrInts
	AttrStrings
)

// AttributeValue is the value of an attribute set in a graph node.
//
// Only the field corresponding to Type is meaningful.
type AttributeValue struct {
	Name string
	Type AttrType

	F       float32
	I       int64
	S       string
	T       *Tensor
	Floats  []float32
	Ints    []int64
	Strings []string
}

// IntAttr returns an integer attribute value.
func IntAttr(name string, value int64) AttributeValue {
	return AttributeValue{Name: name, Type: AttrInt, I: value}
}

// IntsAttr returns an integer list attribute value.
func IntsAttr(name string, values ...int64) AttributeValue {
	if values == nil {
		values = []int64{}
	}
	return AttributeValue{Name: name, Type: AttrInts, Ints: values}
}

// FloatAttr returns a float attribute value.
func FloatAttr(name string, value float32) AttributeValue {
	return AttributeValue{Name: name, Type: AttrFloat, F: value}
}

// FloatsAttr returns a float list attribute value.
func FloatsAttr(name string, values ...float32) AttributeValue {
	if values == nil {
		values = []float32{}
	}
	return AttributeValue{Name: name, Type: AttrFloats, Floats: values}
}

// StringAttr returns a string attribute value.
func StringAttr(name, value string) AttributeValue {
	return AttributeValue{Name: name, Type: AttrString, S: value}
}

// StringsAttr returns a string list attribute value.
func StringsAttr(name string, values ...string) AttributeValue {
	if values == nil {
		values = []string{}
	}
	return AttributeValue{Name: name, Type: AttrStrings, Strings: values}
}

// TensorAttr returns a tensor attribute value.
func TensorAttr(name string, tensor *Tensor) AttributeValue {
	return AttributeValue{Name: name, Type: AttrTensor, T: tensor}
}

// WithName returns a copy of the attribute value with a new name.
func (a AttributeValue) WithName(name string) AttributeValue {
	a2 := a.Clone()
	a2.Name = name
	return a2
}

// Clone returns a copy of the attribute value that doesn't share the list values.
// Tensor values are shared, they are never mutated.
func (a AttributeValue) Clone() AttributeValue {
	a2 := a
	a2.Floats = slices.Clone(a.Floats)
	a2.Ints = slices.Clone(a.Ints)
	a2.Strings = slices.Clone(a.Strings)
	return a2
}

// AsInts returns the values of an AttrInts attribute converted to int.
func (a AttributeValue) AsInts() []int {
	ints := make([]int, len(a.Ints))
	for ii, v := range a.Ints {
		ints[ii] = int(v)
	}
	return ints
}

// String implements fmt.Stringer.
func (a AttributeValue) String() string {
	var value string
	switch a.Type {
	case AttrFloat:
		value = fmt.Sprintf("%g", a.F)
	case AttrInt:
		value = fmt.Sprintf("%d", a.I)
	case AttrString:
		value = fmt.Sprintf("%q", a.S)
	case AttrTensor:
		if a.T == nil {
			value = "<nil tensor>"
		} else {
			value = a.T.Shape.String()
		}
	case AttrFloats:
		value = fmt.Sprintf("%v", a.Floats)
	case AttrInts:
		value = fmt.Sprintf("%v", a.Ints)
	case AttrStrings:
		value = fmt.Sprintf("[%s]", strings.Join(a.Strings, ", "))
	default:
		value = "<undefined>"
	}
	return fmt.Sprintf("%s=%s", a.Name, value)
}

// Tensor is a constant tensor value, used as an attribute value.
type Tensor struct {
	Shape shapes.Shape

	// Value is a Go scalar or (multi-level) slice, with a shape matching Shape.
	Value any
}

// NewTensor creates a Tensor from a Go scalar or (multi-level) slice of a supported type.
func NewTensor(value any) (*Tensor, error) {
	shape, err := shapes.FromAnyValue(value)
	if err != nil {
		return nil, errors.WithMessagef(err, "while creating tensor from %T", value)
	}
	return &Tensor{Shape: shape, Value: value}, nil
}
