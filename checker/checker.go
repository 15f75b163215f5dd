// Package checker validates graph nodes against their operator schemas and runs shape/type inference.
//
// For each node it checks the attributes (required, declared and of the declared type), that the input
// element types satisfy the schema type constraints, and then runs the schema inference function to
// derive the output types. CheckGraph does that for all the nodes of a Graph, in order.
package checker

import (
	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// DefaultOpsetVersion used when neither the graph nor the Checker options set one.
const DefaultOpsetVersion = 13

// SchemaLookup finds the schema of an operator for an opset version. It is implemented by
// onnxschema.Registry.
type SchemaLookup interface {
	Schema(domain, name string, opsetVersion int) (*schema.OpSchema, bool)
}

// Checker validates nodes and graphs. It holds no state across calls and can be used concurrently,
// as long as the SchemaLookup can.
type Checker struct {
	lookup           SchemaLookup
	strictAttributes bool
	defaultOpset     int
}

// Option configures a Checker.
type Option func(c *Checker)

// WithStrictAttributes sets whether attributes not declared by the schema are rejected. The default is true.
func WithStrictAttributes(strict bool) Option {
	return func(c *Checker) {
		c.strictAttributes = strict
	}
}

// WithDefaultOpset sets the opset version used for graphs and nodes that don't set one.
// The default is DefaultOpsetVersion.
func WithDefaultOpset(version int) Option {
	return func(c *Checker) {
		if version > 0 {
			c.defaultOpset = version
		}
	}
}

// New creates a Checker using lookup to find operator schemas.
func New(lookup SchemaLookup, opts ...Option) *Checker {
	c := &Checker{
		lookup:           lookup,
		strictAttributes: true,
		defaultOpset:     DefaultOpsetVersion,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CheckNode validates node given the types of its inputs (nil for missing inputs), and returns the
// inferred types of its outputs.
//
// If opsetVersion <= 0, the Checker default opset is used.
func (c *Checker) CheckNode(node *Node, inputs []*types.Type, opsetVersion int) ([]types.Type, error) {
	if opsetVersion <= 0 {
		opsetVersion = c.defaultOpset
	}
	s, found := c.lookup.Schema(node.Domain, node.OpType, opsetVersion)
	if !found {
		return nil, errors.Errorf("node %s: no schema for operator %q in domain %q for opset %d",
			node, node.OpType, node.Domain, opsetVersion)
	}
	if err := c.checkAttributes(s, node); err != nil {
		return nil, errors.WithMessagef(err, "node %s (schema %s)", node, s)
	}
	bindings, err := checkInputs(s, inputs)
	if err != nil {
		return nil, errors.WithMessagef(err, "node %s (schema %s)", node, s)
	}
	if len(node.Outputs) > len(s.Outputs()) {
		return nil, errors.Errorf("node %s (schema %s): %d outputs given, but the operator has only %d",
			node, s, len(node.Outputs), len(s.Outputs()))
	}

	ctx := NewNodeContext(s, node, inputs)
	if err := s.Infer(ctx); err != nil {
		return nil, errors.WithMessagef(err, "node %s (schema %s)", node, s)
	}
	outputs := ctx.Outputs()
	if err := completeOutputs(s, outputs, bindings); err != nil {
		return nil, errors.WithMessagef(err, "node %s (schema %s)", node, s)
	}
	if klog.V(2).Enabled() {
		klog.Infof("checked node %s with schema %s: outputs %v", node, s, outputs)
	}
	return outputs, nil
}

func (c *Checker) checkAttributes(s *schema.OpSchema, node *Node) error {
	seen := make(map[string]bool, len(node.Attributes))
	for _, attr := range node.Attributes {
		if seen[attr.Name] {
			return errors.Errorf("attribute %q set more than once", attr.Name)
		}
		seen[attr.Name] = true
		spec, found := s.Attribute(attr.Name)
		if !found {
			if c.strictAttributes {
				return errors.Errorf("attribute %q is not declared by the operator", attr.Name)
			}
			continue
		}
		if attr.Type != spec.Type {
			return errors.Errorf("attribute %q must be of type %s, got %s", attr.Name, spec.Type, attr.Type)
		}
	}
	for _, spec := range s.Attributes() {
		if spec.Required && !seen[spec.Name] {
			return errors.Errorf("required attribute %q is missing", spec.Name)
		}
	}
	return nil
}

// checkInputs validates the input element types against the schema, and returns the element type bound
// to each type constraint.
func checkInputs(s *schema.OpSchema, inputs []*types.Type) (map[string]dtypes.DType, error) {
	params := s.Inputs()
	if len(inputs) > len(params) {
		return nil, errors.Errorf("%d inputs given, but the operator takes only %d", len(inputs), len(params))
	}
	bindings := make(map[string]dtypes.DType)
	for ii, param := range params {
		if ii >= len(inputs) || inputs[ii] == nil {
			return nil, errors.Errorf("input #%d (%q) is missing", ii, param.Name)
		}
		input := inputs[ii]
		if input.Kind == types.TypeNotSet {
			continue
		}
		if !input.IsTensor() {
			return nil, errors.Errorf("input #%d (%q) must be a tensor, got %s", ii, param.Name, input)
		}
		if input.DType == dtypes.InvalidDType {
			continue
		}
		if !param.IsTypeVariable() {
			if input.DType != param.DType {
				return nil, errors.Errorf("input #%d (%q) must be %s, got %s", ii, param.Name, param.TypeStr, input)
			}
			continue
		}
		constraint, _ := s.TypeConstraint(param.TypeStr)
		if !constraint.Allows(input.DType) {
			return nil, errors.Errorf("input #%d (%q) has type %s, not allowed by the type constraint %s",
				ii, param.Name, input, constraint)
		}
		if bound, found := bindings[param.TypeStr]; found && bound != input.DType {
			return nil, errors.Errorf("input #%d (%q) has element type %s, but type %s is already bound to %s",
				ii, param.Name, input.DType, param.TypeStr, bound)
		}
		bindings[param.TypeStr] = input.DType
	}
	return bindings, nil
}

// completeOutputs sets the element type of outputs left unset by inference, using the concrete type
// declared in the schema or the type bound to its type constraint, and checks the inferred ones.
func completeOutputs(s *schema.OpSchema, outputs []types.Type, bindings map[string]dtypes.DType) error {
	params := s.Outputs()
	for ii := range outputs {
		param := params[ii]
		output := &outputs[ii]
		if output.Kind != types.TypeNotSet && !output.IsTensor() {
			continue
		}
		expected := param.DType
		if param.IsTypeVariable() {
			expected = bindings[param.TypeStr]
		}
		if expected == dtypes.InvalidDType {
			continue
		}
		if output.DType == dtypes.InvalidDType {
			output.SetElemType(expected)
			continue
		}
		if output.DType != expected {
			return errors.Errorf("output #%d (%q) was inferred as %s, but the operator declares %s",
				ii, param.Name, output, param.TypeStr)
		}
	}
	return nil
}

// CheckGraph checks every node of the graph, in order, and returns the type of every value: the graph
// inputs and the outputs of all nodes.
func (c *Checker) CheckGraph(g *Graph) (map[string]types.Type, error) {
	opsetVersion := g.OpsetVersion
	if opsetVersion <= 0 {
		opsetVersion = c.defaultOpset
	}
	values := make(map[string]types.Type, len(g.Inputs)+len(g.Nodes))
	for _, input := range g.Inputs {
		if input.Name == "" {
			return nil, errors.Errorf("graph %q: graph input with empty name", g.Name)
		}
		if _, found := values[input.Name]; found {
			return nil, errors.Errorf("graph %q: input %q defined more than once", g.Name, input.Name)
		}
		values[input.Name] = input.Type.Clone()
	}
	for ii := range g.Nodes {
		node := &g.Nodes[ii]
		inputs := make([]*types.Type, len(node.Inputs))
		for jj, name := range node.Inputs {
			if name == "" {
				continue
			}
			value, found := values[name]
			if !found {
				return nil, errors.Errorf("graph %q: node #%d %s uses undefined value %q", g.Name, ii, node, name)
			}
			inputs[jj] = &value
		}
		outputs, err := c.CheckNode(node, inputs, opsetVersion)
		if err != nil {
			return nil, errors.WithMessagef(err, "graph %q: node #%d", g.Name, ii)
		}
		for jj, name := range node.Outputs {
			if name == "" {
				continue
			}
			if _, found := values[name]; found {
				return nil, errors.Errorf("graph %q: node #%d %s redefines value %q", g.Name, ii, node, name)
			}
			values[name] = outputs[jj]
		}
	}
	klog.V(1).Infof("graph %q: checked %d nodes, %d values", g.Name, len(g.Nodes), len(values))
	return values, nil
}
