package checker

import (
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types"
)

// NodeContext implements schema.InferenceContext for one node.
//
// Attribute values are the ones set in the node, completed with the schema defaults. Output slots start
// as types.TypeNotSet and are filled by schema.OpSchema.Infer.
type NodeContext struct {
	attributes map[string]types.AttributeValue
	inputs     []*types.Type
	outputs    []*types.Type
}

var _ schema.InferenceContext = (*NodeContext)(nil)

// NewNodeContext creates the inference context of node, given the types of its inputs (nil for a missing
// input).
//
// The number of output slots is the number of outputs of the node, or the number declared by the schema
// if the node doesn't name its outputs.
func NewNodeContext(s *schema.OpSchema, node *Node, inputs []*types.Type) *NodeContext {
	ctx := &NodeContext{
		attributes: make(map[string]types.AttributeValue, len(node.Attributes)),
		inputs:     inputs,
	}
	for _, attr := range node.Attributes {
		ctx.attributes[attr.Name] = attr
	}
	for _, spec := range s.Attributes() {
		if _, found := ctx.attributes[spec.Name]; !found && spec.HasDefault() {
			ctx.attributes[spec.Name] = spec.Default.Clone()
		}
	}
	numOutputs := len(node.Outputs)
	if numOutputs == 0 {
		numOutputs = len(s.Outputs())
	}
	ctx.outputs = make([]*types.Type, numOutputs)
	for ii := range ctx.outputs {
		ctx.outputs[ii] = &types.Type{}
	}
	return ctx
}

// Attribute implements schema.InferenceContext.
func (c *NodeContext) Attribute(name string) (types.AttributeValue, bool) {
	attr, found := c.attributes[name]
	return attr, found
}

// NumInputs implements schema.InferenceContext.
func (c *NodeContext) NumInputs() int { return len(c.inputs) }

// InputType implements schema.InferenceContext.
func (c *NodeContext) InputType(i int) *types.Type {
	if i < 0 || i >= len(c.inputs) {
		return nil
	}
	return c.inputs[i]
}

// NumOutputs implements schema.InferenceContext.
func (c *NodeContext) NumOutputs() int { return len(c.outputs) }

// OutputType implements schema.InferenceContext.
func (c *NodeContext) OutputType(i int) *types.Type {
	if i < 0 || i >= len(c.outputs) {
		return nil
	}
	return c.outputs[i]
}

// Outputs returns a copy of the output types.
func (c *NodeContext) Outputs() []types.Type {
	outputs := make([]types.Type, len(c.outputs))
	for ii, output := range c.outputs {
		outputs[ii] = output.Clone()
	}
	return outputs
}
