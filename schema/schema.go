package schema

import (
	"fmt"
	"slices"

	"github.com/gomlx/gopjrt/dtypes"
)

// FormalParameter declares one input or output of an operator.
type FormalParameter struct {
	Name        string
	Description string

	// TypeStr is either the name of a TypeConstraint declared in the same schema (e.g. "T"), or a
	// concrete tensor type string, like "tensor(int64)".
	TypeStr string

	// DType is the concrete element type if TypeStr is a concrete tensor type, otherwise dtypes.InvalidDType.
	DType dtypes.DType
}

// IsTypeVariable returns whether the parameter type is given by a type constraint.
func (p FormalParameter) IsTypeVariable() bool { return p.DType == dtypes.InvalidDType }

// OpSchema is the contract of an operator. It is created with a Builder and is immutable afterward.
type OpSchema struct {
	name         string
	domain       string
	sinceVersion int
	doc          string

	attributes  []AttributeSpec
	inputs      []FormalParameter
	outputs     []FormalParameter
	constraints []TypeConstraint

	inferenceFn InferenceFunction
}

// Name of the operator, e.g. "ReduceSum".
func (s *OpSchema) Name() string { return s.name }

// Domain of the operator. The default ONNX domain is "".
func (s *OpSchema) Domain() string { return s.domain }

// SinceVersion is the operator set version that introduced this schema.
func (s *OpSchema) SinceVersion() int { return s.sinceVersion }

// Doc returns the documentation of the operator.
func (s *OpSchema) Doc() string { return s.doc }

// Attributes returns the declared attributes, in declaration order.
func (s *OpSchema) Attributes() []AttributeSpec { return slices.Clone(s.attributes) }

// Attribute returns the declaration of the attribute with the given name.
func (s *OpSchema) Attribute(name string) (AttributeSpec, bool) {
	idx := slices.IndexFunc(s.attributes, func(a AttributeSpec) bool { return a.Name == name })
	if idx < 0 {
		return AttributeSpec{}, false
	}
	return s.attributes[idx], true
}

// Inputs returns the declared inputs, ordered by index.
func (s *OpSchema) Inputs() []FormalParameter { return slices.Clone(s.inputs) }

// Outputs returns the declared outputs, ordered by index.
func (s *OpSchema) Outputs() []FormalParameter { return slices.Clone(s.outputs) }

// TypeConstraints returns the declared type constraints, in declaration order.
func (s *OpSchema) TypeConstraints() []TypeConstraint { return slices.Clone(s.constraints) }

// TypeConstraint returns the type constraint with the given name.
func (s *OpSchema) TypeConstraint(name string) (TypeConstraint, bool) {
	idx := slices.IndexFunc(s.constraints, func(c TypeConstraint) bool { return c.Name == name })
	if idx < 0 {
		return TypeConstraint{}, false
	}
	return s.constraints[idx], true
}

// HasInferenceFunction returns whether the schema has a shape/type inference function.
func (s *OpSchema) HasInferenceFunction() bool { return s.inferenceFn != nil }

// Infer runs the schema's shape/type inference function on the given context.
// It's a no-op if the schema has no inference function.
func (s *OpSchema) Infer(ctx InferenceContext) error {
	if s.inferenceFn == nil {
		return nil
	}
	return s.inferenceFn(ctx)
}

// String implements fmt.Stringer, e.g. "ReduceSum-1" or "com.example::MyOp-3".
func (s *OpSchema) String() string {
	if s.domain == "" {
		return fmt.Sprintf("%s-%d", s.name, s.sinceVersion)
	}
	return fmt.Sprintf("%s::%s-%d", s.domain, s.name, s.sinceVersion)
}
