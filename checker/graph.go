package checker

import (
	"fmt"
	"strings"

	"github.com/gomlx/onnxschema/types"
)

// Node is one operation of a graph.
type Node struct {
	// Name of the node, used only for error messages.
	Name string

	// OpType and Domain identify the operator schema. Domain "" is the default ONNX domain.
	OpType, Domain string

	// Inputs and Outputs are the names of the values consumed and produced by the node.
	// An empty input name is a missing (optional) input.
	Inputs, Outputs []string

	Attributes []types.AttributeValue
}

// String implements fmt.Stringer.
func (n *Node) String() string {
	op := n.OpType
	if n.Domain != "" {
		op = n.Domain + "::" + op
	}
	if n.Name == "" {
		return op
	}
	return fmt.Sprintf("%q (%s)", n.Name, op)
}

// ValueInfo is a named graph value with its type.
type ValueInfo struct {
	Name string
	Type types.Type
}

// String implements fmt.Stringer.
func (v ValueInfo) String() string {
	return v.Name + ": " + v.Type.String()
}

// Graph is a list of nodes, in topological order, consuming the graph inputs.
type Graph struct {
	Name string

	// OpsetVersion of the default domain used by the graph. If <= 0 the checker's default is used.
	OpsetVersion int

	Inputs []ValueInfo
	Nodes  []Node
}

// String implements fmt.Stringer.
func (g *Graph) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "graph %q (opset %d):\n", g.Name, g.OpsetVersion)
	for _, input := range g.Inputs {
		fmt.Fprintf(&sb, "\tinput %s\n", input)
	}
	for ii := range g.Nodes {
		node := &g.Nodes[ii]
		fmt.Fprintf(&sb, "\t%s = %s(%s)\n", strings.Join(node.Outputs, ", "), node, strings.Join(node.Inputs, ", "))
	}
	return sb.String()
}
