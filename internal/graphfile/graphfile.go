// Package graphfile loads checker.Graph descriptions from YAML files.
//
// Example:
//
//	name: scores
//	opset: 13
//	inputs:
//	  - name: logits
//	    dtype: float
//	    shape: [batch, 10, 16]
//	nodes:
//	  - name: pool
//	    op: ReduceMean
//	    inputs: [logits]
//	    outputs: [pooled]
//	    attributes:
//	      axes: [-1]
//	      keepdims: 0
//
// Element types use the ONNX names ("float", "double", "int64", ...). Shape entries are integers for static
// dimensions, "?" (quoted, since it is a YAML indicator) for unknown dimensions, and any other string for
// symbolic dimensions. An input without shape has unknown rank, while "shape: []" is a scalar.
//
// Attribute types are taken from the YAML values: integers are INT, floats are FLOAT, strings are STRING,
// and lists of those are INTS, FLOATS or STRINGS. An empty list is INTS. A value tagged "!tensor" is a
// constant TENSOR, given as a number or a nested list of numbers, e.g. "value: !tensor [[1, 2], [3, 4]]".
package graphfile

import (
	"bytes"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/gomlx/onnxschema/checker"
	"github.com/gomlx/onnxschema/internal/utils"
	"github.com/gomlx/onnxschema/types"
	"github.com/gomlx/onnxschema/types/shapes"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type fileGraph struct {
	Name   string      `yaml:"name"`
	Opset  int         `yaml:"opset"`
	Inputs []fileValue `yaml:"inputs"`
	Nodes  []fileNode  `yaml:"nodes"`
}

type fileValue struct {
	Name  string     `yaml:"name"`
	DType string     `yaml:"dtype"`
	Shape yaml.Node  `yaml:"shape"`
}

type fileNode struct {
	Name       string    `yaml:"name"`
	Op         string    `yaml:"op"`
	Domain     string    `yaml:"domain"`
	Inputs     []string  `yaml:"inputs"`
	Outputs    []string  `yaml:"outputs"`
	Attributes yaml.Node `yaml:"attributes"`
}

// Load reads the graph from the YAML file in path.
func Load(path string) (*checker.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read graph file %q", path)
	}
	g, err := Parse(data)
	if err != nil {
		return nil, errors.WithMessagef(err, "graph file %q", path)
	}
	return g, nil
}

// Parse the YAML description of a graph. Unknown fields are an error.
func Parse(data []byte) (*checker.Graph, error) {
	var file fileGraph
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty graph description")
		}
		return nil, errors.Wrap(err, "failed to parse graph description")
	}

	g := &checker.Graph{
		Name:         file.Name,
		OpsetVersion: file.Opset,
		Inputs:       make([]checker.ValueInfo, 0, len(file.Inputs)),
		Nodes:        make([]checker.Node, 0, len(file.Nodes)),
	}
	for ii, input := range file.Inputs {
		valueType, err := parseType(input)
		if err != nil {
			return nil, errors.WithMessagef(err, "input #%d (%q)", ii, input.Name)
		}
		g.Inputs = append(g.Inputs, checker.ValueInfo{Name: input.Name, Type: valueType})
	}
	for ii, node := range file.Nodes {
		if node.Op == "" {
			return nil, errors.Errorf("node #%d (%q) has no op", ii, node.Name)
		}
		attrs, err := parseAttributes(&node.Attributes)
		if err != nil {
			return nil, errors.WithMessagef(err, "node #%d (%q)", ii, node.Name)
		}
		g.Nodes = append(g.Nodes, checker.Node{
			Name:       node.Name,
			OpType:     node.Op,
			Domain:     node.Domain,
			Inputs:     node.Inputs,
			Outputs:    node.Outputs,
			Attributes: attrs,
		})
	}
	return g, nil
}

func parseType(value fileValue) (types.Type, error) {
	if value.DType == "" {
		return types.Type{}, errors.New("missing dtype")
	}
	dtype, err := utils.DTypeFromONNX(value.DType)
	if err != nil {
		return types.Type{}, err
	}
	t := types.TensorType(dtype)
	if value.Shape.Kind == 0 || (value.Shape.Kind == yaml.ScalarNode && value.Shape.ShortTag() == "!!null") {
		return t, nil
	}
	if value.Shape.Kind != yaml.SequenceNode {
		return types.Type{}, errors.Errorf("line %d: shape must be a list", value.Shape.Line)
	}
	dims := make([]shapes.Dim, 0, len(value.Shape.Content))
	for _, entry := range value.Shape.Content {
		dim, err := parseDim(entry)
		if err != nil {
			return types.Type{}, err
		}
		dims = append(dims, dim)
	}
	t.SetShape(dims)
	return t, nil
}

func parseDim(node *yaml.Node) (shapes.Dim, error) {
	if node.Kind != yaml.ScalarNode {
		return shapes.Dim{}, errors.Errorf("line %d: invalid dimension", node.Line)
	}
	switch node.ShortTag() {
	case "!!int":
		value, err := strconv.Atoi(node.Value)
		if err != nil || value < 0 {
			return shapes.Dim{}, errors.Errorf("line %d: invalid dimension %q", node.Line, node.Value)
		}
		return shapes.Static(value), nil
	case "!!str":
		if node.Value == "?" || node.Value == "" {
			return shapes.UnknownDim(), nil
		}
		if !utils.IsValidIdentifier(node.Value) {
			return shapes.Dim{}, errors.Errorf("line %d: invalid symbolic dimension %q", node.Line, node.Value)
		}
		return shapes.Symbolic(node.Value), nil
	default:
		return shapes.Dim{}, errors.Errorf("line %d: invalid dimension %q", node.Line, node.Value)
	}
}

func parseAttributes(node *yaml.Node) ([]types.AttributeValue, error) {
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.Errorf("line %d: attributes must be a mapping of names to values", node.Line)
	}
	attrs := make([]types.AttributeValue, 0, len(node.Content)/2)
	for ii := 0; ii+1 < len(node.Content); ii += 2 {
		name := node.Content[ii].Value
		attr, err := parseAttribute(name, node.Content[ii+1])
		if err != nil {
			return nil, errors.WithMessagef(err, "attribute %q", name)
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

func parseAttribute(name string, node *yaml.Node) (types.AttributeValue, error) {
	if node.Tag == tensorTag {
		return parseTensorAttribute(name, node)
	}
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int":
			var value int64
			if err := node.Decode(&value); err != nil {
				return types.AttributeValue{}, errors.Wrapf(err, "line %d", node.Line)
			}
			return types.IntAttr(name, value), nil
		case "!!float":
			var value float32
			if err := node.Decode(&value); err != nil {
				return types.AttributeValue{}, errors.Wrapf(err, "line %d", node.Line)
			}
			return types.FloatAttr(name, value), nil
		case "!!str":
			return types.StringAttr(name, node.Value), nil
		}
	case yaml.SequenceNode:
		return parseListAttribute(name, node)
	}
	return types.AttributeValue{}, errors.Errorf("line %d: unsupported attribute value %q (tag %s)", node.Line, node.Value, node.ShortTag())
}

func parseListAttribute(name string, node *yaml.Node) (types.AttributeValue, error) {
	var hasInts, hasFloats, hasStrings bool
	for _, entry := range node.Content {
		if entry.Kind != yaml.ScalarNode {
			return types.AttributeValue{}, errors.Errorf("line %d: lists of lists are not supported", entry.Line)
		}
		switch entry.ShortTag() {
		case "!!int":
			hasInts = true
		case "!!float":
			hasFloats = true
		case "!!str":
			hasStrings = true
		default:
			return types.AttributeValue{}, errors.Errorf("line %d: unsupported list entry %q (tag %s)", entry.Line, entry.Value, entry.ShortTag())
		}
	}
	if hasStrings && (hasInts || hasFloats) {
		return types.AttributeValue{}, errors.Errorf("line %d: list mixes strings and numbers", node.Line)
	}
	switch {
	case hasStrings:
		var values []string
		if err := node.Decode(&values); err != nil {
			return types.AttributeValue{}, errors.Wrapf(err, "line %d", node.Line)
		}
		return types.StringsAttr(name, values...), nil
	case hasFloats:
		var values []float32
		if err := node.Decode(&values); err != nil {
			return types.AttributeValue{}, errors.Wrapf(err, "line %d", node.Line)
		}
		return types.FloatsAttr(name, values...), nil
	default:
		var values []int64
		if err := node.Decode(&values); err != nil {
			return types.AttributeValue{}, errors.Wrapf(err, "line %d", node.Line)
		}
		return types.IntsAttr(name, values...), nil
	}
}

// tensorTag marks an attribute holding a constant tensor, given as a scalar or (nested) list of numbers.
const tensorTag = "!tensor"

// parseTensorAttribute parses a "!tensor" value into an AttrTensor. The element type is int64 if all
// values are integers, float32 otherwise.
func parseTensorAttribute(name string, node *yaml.Node) (types.AttributeValue, error) {
	isFloat, err := tensorLeavesKind(node)
	if err != nil {
		return types.AttributeValue{}, err
	}
	var goType reflect.Type
	if isFloat {
		goType = reflect.TypeOf(float32(0))
	} else {
		goType = reflect.TypeOf(int64(0))
	}
	for leaf := node; leaf.Kind == yaml.SequenceNode && len(leaf.Content) > 0; leaf = leaf.Content[0] {
		goType = reflect.SliceOf(goType)
	}

	// Decode without the custom tag, so the scalars are resolved as plain numbers.
	untagged := *node
	untagged.Tag = ""
	untagged.Style &^= yaml.TaggedStyle
	value := reflect.New(goType)
	if err := untagged.Decode(value.Interface()); err != nil {
		return types.AttributeValue{}, errors.Wrapf(err, "line %d: invalid tensor", node.Line)
	}
	tensor, err := types.NewTensor(value.Elem().Interface())
	if err != nil {
		return types.AttributeValue{}, errors.WithMessagef(err, "line %d", node.Line)
	}
	return types.TensorAttr(name, tensor), nil
}

// tensorLeavesKind checks that all leaves of the tensor are numbers, and returns whether any is a float.
func tensorLeavesKind(node *yaml.Node) (isFloat bool, err error) {
	switch node.Kind {
	case yaml.SequenceNode:
		for _, entry := range node.Content {
			entryIsFloat, err := tensorLeavesKind(entry)
			if err != nil {
				return false, err
			}
			isFloat = isFloat || entryIsFloat
		}
		return isFloat, nil
	case yaml.ScalarNode:
		// The tag of the top node is "!tensor": resolve it as an untagged scalar.
		tag := node.ShortTag()
		if node.Tag == tensorTag {
			untagged := *node
			untagged.Tag = ""
			untagged.Style &^= yaml.TaggedStyle
			tag = untagged.ShortTag()
		}
		switch tag {
		case "!!int":
			return false, nil
		case "!!float":
			return true, nil
		}
	}
	return false, errors.Errorf("line %d: tensor values must be numbers, got %q", node.Line, node.Value)
}
