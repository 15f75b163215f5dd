// Package onnxschema is a registry of operator schemas with shape and type inference, used to validate
// ONNX-style computation graphs statically, before they are executed.
//
// The standard schemas are registered with NewStandardRegistry:
//
//	registry := must.M1(onnxschema.NewStandardRegistry())
//	s, found := registry.Schema("", "ReduceSum", 13)
//
// Each OpSchema (see package schema) declares the attributes, inputs, outputs and type constraints of an
// operator, plus its inference function (see package shapeinference). The checker package uses a Registry
// to validate nodes and whole graphs.
package onnxschema

import (
	"github.com/gomlx/onnxschema/defs/reduction"
	"github.com/pkg/errors"
)

// NewStandardRegistry returns a frozen Registry with all the schemas defined in this module.
func NewStandardRegistry() (*Registry, error) {
	r := NewRegistry()
	if err := reduction.Register(r); err != nil {
		return nil, errors.WithMessage(err, "failed to register reduction operators")
	}
	r.Freeze()
	return r, nil
}
