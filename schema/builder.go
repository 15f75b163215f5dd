package schema

import (
	"slices"

	"github.com/gomlx/exceptions"
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/internal/utils"
	"github.com/gomlx/onnxschema/types"
	"github.com/pkg/errors"
)

// FillFunc configures a Builder. It's used to share the same recipe across many operators, see
// Builder.FillUsing.
type FillFunc func(b *Builder)

// Builder assembles an OpSchema with fluent calls, see New.
//
// Each slot (documentation, an attribute name, an input or output index, a type constraint name and the
// inference function) can only be set once. The first error is recorded and returned by Build.
type Builder struct {
	name         string
	domain       string
	sinceVersion int
	doc          string
	docSet       bool

	attributes  []AttributeSpec
	inputs      map[int]FormalParameter
	outputs     map[int]FormalParameter
	constraints []TypeConstraint

	inferenceFn InferenceFunction

	err error
}

// New creates a Builder for the operator with the given name, in the default domain ("") and since
// version 1.
func New(name string) *Builder {
	return &Builder{
		name:         name,
		sinceVersion: 1,
		inputs:       make(map[int]FormalParameter),
		outputs:      make(map[int]FormalParameter),
	}
}

func (b *Builder) setErrorf(format string, args ...any) {
	if b.err != nil {
		return
	}
	b.err = errors.Wrapf(errors.Errorf(format, args...), "schema for operator %q", b.name)
}

// SetDoc sets the documentation of the operator.
func (b *Builder) SetDoc(doc string) *Builder {
	if b.docSet {
		b.setErrorf("documentation set more than once")
		return b
	}
	b.doc = doc
	b.docSet = true
	return b
}

// SetDomain sets the domain of the operator. The default ONNX domain is "".
func (b *Builder) SetDomain(domain string) *Builder {
	b.domain = domain
	return b
}

// SinceVersion sets the operator set version that introduced this schema. The default is 1.
func (b *Builder) SinceVersion(version int) *Builder {
	if version < 1 {
		b.setErrorf("invalid since version %d, it must be >= 1", version)
		return b
	}
	b.sinceVersion = version
	return b
}

// Attr declares an attribute without a default value. If required is false, the attribute may be
// absent in a node.
func (b *Builder) Attr(name, description string, attrType types.AttrType, required bool) *Builder {
	b.addAttribute(AttributeSpec{Name: name, Description: description, Type: attrType, Required: required})
	return b
}

// AttrDefault declares an optional attribute with a default value. The attribute type is taken from the
// default value, whose name is ignored.
func (b *Builder) AttrDefault(name, description string, defaultValue types.AttributeValue) *Builder {
	defaultValue = defaultValue.WithName(name)
	b.addAttribute(AttributeSpec{Name: name, Description: description, Type: defaultValue.Type, Default: &defaultValue})
	return b
}

func (b *Builder) addAttribute(attr AttributeSpec) {
	if !utils.IsValidIdentifier(attr.Name) {
		b.setErrorf("invalid attribute name %q", attr.Name)
		return
	}
	if attr.Type == types.AttrUndefined || !attr.Type.IsAAttrType() {
		b.setErrorf("attribute %q has invalid type %s", attr.Name, attr.Type)
		return
	}
	if slices.ContainsFunc(b.attributes, func(a AttributeSpec) bool { return a.Name == attr.Name }) {
		b.setErrorf("attribute %q declared more than once", attr.Name)
		return
	}
	b.attributes = append(b.attributes, attr)
}

// Input declares the input at the given index. typeStr is either the name of a type constraint or a
// concrete tensor type, like "tensor(float)".
func (b *Builder) Input(index int, name, description, typeStr string) *Builder {
	b.addParameter("input", b.inputs, index, name, description, typeStr)
	return b
}

// Output declares the output at the given index. typeStr is either the name of a type constraint or a
// concrete tensor type, like "tensor(int64)".
func (b *Builder) Output(index int, name, description, typeStr string) *Builder {
	b.addParameter("output", b.outputs, index, name, description, typeStr)
	return b
}

func (b *Builder) addParameter(kind string, params map[int]FormalParameter, index int, name, description, typeStr string) {
	if index < 0 {
		b.setErrorf("invalid %s index %d", kind, index)
		return
	}
	if _, found := params[index]; found {
		b.setErrorf("%s #%d declared more than once", kind, index)
		return
	}
	if !utils.IsValidIdentifier(name) {
		b.setErrorf("invalid name %q for %s #%d", name, kind, index)
		return
	}
	if typeStr == "" {
		b.setErrorf("missing type for %s #%d (%q)", kind, index, name)
		return
	}
	params[index] = FormalParameter{Name: name, Description: description, TypeStr: typeStr, DType: dtypes.InvalidDType}
}

// TypeConstraint declares the type variable name, bound to the given element types.
func (b *Builder) TypeConstraint(name string, allowed []dtypes.DType, description string) *Builder {
	if !utils.IsValidIdentifier(name) {
		b.setErrorf("invalid type constraint name %q", name)
		return b
	}
	if len(allowed) == 0 {
		b.setErrorf("type constraint %q allows no types", name)
		return b
	}
	if slices.ContainsFunc(b.constraints, func(c TypeConstraint) bool { return c.Name == name }) {
		b.setErrorf("type constraint %q declared more than once", name)
		return b
	}
	b.constraints = append(b.constraints, TypeConstraint{Name: name, AllowedDTypes: slices.Clone(allowed), Description: description})
	return b
}

// TypeAndShapeInferenceFunction sets the shape/type inference function of the operator.
func (b *Builder) TypeAndShapeInferenceFunction(fn InferenceFunction) *Builder {
	if fn == nil {
		b.setErrorf("nil inference function")
		return b
	}
	if b.inferenceFn != nil {
		b.setErrorf("inference function set more than once")
		return b
	}
	b.inferenceFn = fn
	return b
}

// FillUsing applies the recipe fill to the builder.
func (b *Builder) FillUsing(fill FillFunc) *Builder {
	fill(b)
	return b
}

// Build validates the declarations and returns the immutable OpSchema.
//
// It returns the first error recorded while building, or an error if the inputs or outputs are not
// indexed contiguously from 0, or if any of them refers to an undeclared type constraint.
func (b *Builder) Build() (*OpSchema, error) {
	if b.err != nil {
		return nil, b.err
	}
	if !utils.IsValidIdentifier(b.name) {
		return nil, errors.Errorf("invalid operator name %q", b.name)
	}
	s := &OpSchema{
		name:         b.name,
		domain:       b.domain,
		sinceVersion: b.sinceVersion,
		doc:          b.doc,
		attributes:   slices.Clone(b.attributes),
		constraints:  slices.Clone(b.constraints),
		inferenceFn:  b.inferenceFn,
	}
	var err error
	s.inputs, err = b.resolveParameters("input", b.inputs)
	if err != nil {
		return nil, err
	}
	s.outputs, err = b.resolveParameters("output", b.outputs)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// MustBuild is like Build, but panics on error.
func (b *Builder) MustBuild() *OpSchema {
	s, err := b.Build()
	if err != nil {
		exceptions.Panicf("%+v", err)
	}
	return s
}

func (b *Builder) resolveParameters(kind string, params map[int]FormalParameter) ([]FormalParameter, error) {
	resolved := make([]FormalParameter, len(params))
	for index, param := range params {
		if index >= len(params) {
			return nil, errors.Errorf("schema for operator %q: %s indices must be contiguous from 0, got index %d for %d %ss",
				b.name, kind, index, len(params), kind)
		}
		dtype, isConcrete, err := utils.ParseTensorTypeString(param.TypeStr)
		if err != nil {
			return nil, errors.WithMessagef(err, "schema for operator %q: %s #%d (%q)", b.name, kind, index, param.Name)
		}
		if isConcrete {
			param.DType = dtype
		} else if !slices.ContainsFunc(b.constraints, func(c TypeConstraint) bool { return c.Name == param.TypeStr }) {
			return nil, errors.Errorf("schema for operator %q: %s #%d (%q) refers to undeclared type constraint %q",
				b.name, kind, index, param.Name, param.TypeStr)
		}
		resolved[index] = param
	}
	return resolved, nil
}
