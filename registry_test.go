package onnxschema

import (
	"testing"

	"github.com/gomlx/onnxschema/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func must[T any](value T, err error) T {
	if err != nil {
		panic(err)
	}
	return value
}

func opSchema(domain, name string, version int) *schema.OpSchema {
	return schema.New(name).SetDomain(domain).SinceVersion(version).
		Input(0, "x", "", "tensor(float)").
		Output(0, "y", "", "tensor(float)").
		MustBuild()
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(opSchema("", "Foo", 1)))
	require.NoError(t, r.Register(opSchema("", "Foo", 13)))
	require.NoError(t, r.Register(opSchema("", "Foo", 7)))
	require.NoError(t, r.Register(opSchema("com.example", "Foo", 1)))
	require.NoError(t, r.Register(opSchema("", "Bar", 1)))
	assert.Equal(t, 5, r.Len())
	assert.Equal(t, []int{1, 7, 13}, r.Versions("", "Foo"))

	err := r.Register(opSchema("", "Foo", 7))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
	require.Error(t, r.Register(opSchema("", "Bar", 1)))
	require.Error(t, r.Register(nil))

	for _, tc := range []struct {
		opsetVersion, want int
	}{{1, 1}, {6, 1}, {7, 7}, {12, 7}, {13, 13}, {100, 13}} {
		s, found := r.Schema("", "Foo", tc.opsetVersion)
		require.True(t, found, "opset %d", tc.opsetVersion)
		assert.Equal(t, tc.want, s.SinceVersion(), "opset %d", tc.opsetVersion)
		assert.Equal(t, "", s.Domain())
	}
	_, found := r.Schema("", "Foo", 0)
	assert.False(t, found)
	_, found = r.Schema("", "Baz", 13)
	assert.False(t, found)
	s, found := r.Schema("com.example", "Foo", 13)
	require.True(t, found)
	assert.Equal(t, "com.example::Foo-1", s.String())

	var names []string
	for _, s := range r.Schemas() {
		names = append(names, s.String())
	}
	assert.Equal(t, []string{"Bar-1", "Foo-1", "Foo-7", "Foo-13", "com.example::Foo-1"}, names)

	r.Freeze()
	r.Freeze()
	err = r.Register(opSchema("", "Baz", 1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "frozen")
}

func TestNewStandardRegistry(t *testing.T) {
	r := must(NewStandardRegistry())
	require.Error(t, r.Register(opSchema("", "Custom", 1)), "standard registry should be frozen")
	assert.Equal(t, 12, r.Len())
	for _, name := range []string{"ReduceSum", "ReduceL2", "ReduceLogSumExp", "ArgMax", "ArgMin"} {
		s, found := r.Schema("", name, 13)
		require.True(t, found, name)
		assert.Equal(t, 1, s.SinceVersion())
		assert.True(t, s.HasInferenceFunction())
	}
	_, found := r.Schema("", "Conv", 13)
	assert.False(t, found)
}
