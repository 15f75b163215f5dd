package schema

import "github.com/gomlx/onnxschema/types"

// AttributeSpec declares an attribute of an operator.
//
// If the attribute is not Required and has no Default, its absence is a legal state, and the
// InferenceContext reports it as absent -- it is never silently replaced by a zero value.
type AttributeSpec struct {
	Name        string
	Description string
	Type        types.AttrType
	Required    bool

	// Default value used when the node doesn't set the attribute. Nil if there is no default.
	Default *types.AttributeValue
}

// HasDefault returns whether the attribute has a default value.
func (a AttributeSpec) HasDefault() bool { return a.Default != nil }
