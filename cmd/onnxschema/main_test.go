package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/gomlx/onnxschema"
	"github.com/gomlx/onnxschema/schema"
	"github.com/gomlx/onnxschema/types"
	"github.com/gomlx/onnxschema/types/shapes"
	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementsCount(t *testing.T) {
	assert.Equal(t, "12,000", elementsCount(types.TensorTypeOf(shapes.Make(dtypes.Float32, 3, 4, 1000))))
	assert.Equal(t, "1", elementsCount(types.TensorTypeOf(shapes.Make(dtypes.Float32))))
	assert.Equal(t, "?", elementsCount(types.TensorType(dtypes.Float32)))
	assert.Equal(t, "?", elementsCount(types.TensorTypeOf(shapes.MakeDims(dtypes.Float32, shapes.Symbolic("batch")))))
	assert.Equal(t, "?", elementsCount(types.Type{Kind: types.TypeSequence}))
}

func TestDocSchema(t *testing.T) {
	registry := must.M1(onnxschema.NewStandardRegistry())
	var buf bytes.Buffer
	require.NoError(t, docSchema(&buf, registry, "", "ReduceSum", 13))
	assert.Contains(t, buf.String(), "ReduceSum-1")
	assert.Contains(t, buf.String(), "keepdims")
	assert.NotContains(t, buf.String(), "Versions:")

	buf.Reset()
	require.NoError(t, docSchema(&buf, registry, "", "arg_max", 13))
	assert.Contains(t, buf.String(), "ArgMax-1")
	require.Error(t, docSchema(&buf, registry, "", "Conv", 13))
	require.Error(t, docSchema(&buf, registry, "com.example", "ReduceSum", 13))

	custom := onnxschema.NewRegistry()
	for _, version := range []int{1, 11} {
		require.NoError(t, custom.Register(schema.New("Foo").SinceVersion(version).
			Input(0, "x", "", "tensor(float)").
			Output(0, "y", "", "tensor(float)").
			MustBuild()))
	}
	buf.Reset()
	require.NoError(t, docSchema(&buf, custom, "", "Foo", 13))
	assert.Contains(t, buf.String(), "Foo-11")
	assert.Contains(t, buf.String(), "Versions: 1, 11")
}

func TestCheckGraph(t *testing.T) {
	registry := must.M1(onnxschema.NewStandardRegistry())
	dir := t.TempDir()
	path := filepath.Join(dir, "model.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
name: pooling
opset: 13
inputs:
  - name: logits
    dtype: float
    shape: [batch, "?", 16]
nodes:
  - op: ReduceMean
    inputs: [logits]
    outputs: [pooled]
    attributes:
      axes: [-1]
      keepdims: 0
  - op: ArgMax
    inputs: [pooled]
    outputs: [class]
    attributes:
      axis: 1
`), 0o644))

	var buf bytes.Buffer
	require.NoError(t, checkGraph(&buf, registry, path))
	out := buf.String()
	assert.Contains(t, out, "pooling: 2 nodes checked")
	assert.Contains(t, out, "tensor(float)[batch ? 16]")
	assert.Contains(t, out, "tensor(float)[batch ?]")
	assert.Contains(t, out, "tensor(int64)[batch 1]")

	require.Error(t, checkGraph(&buf, registry, filepath.Join(dir, "missing.yaml")))

	badAxis := filepath.Join(dir, "bad_axis.yaml")
	require.NoError(t, os.WriteFile(badAxis, []byte(`
inputs:
  - name: x
    dtype: float
    shape: [2, 3]
nodes:
  - op: ArgMin
    inputs: [x]
    outputs: [y]
    attributes:
      axis: 5
`), 0o644))
	buf.Reset()
	require.Error(t, checkGraph(&buf, registry, badAxis))
	assert.Empty(t, buf.String())
}
