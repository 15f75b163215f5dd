package onnxschema

import (
	"cmp"
	"slices"

	"github.com/gomlx/onnxschema/schema"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

type schemaKey struct {
	domain, name string
}

// Registry holds operator schemas, indexed by domain, name and since version.
//
// Schemas are registered at start-up, then the Registry is frozen. Register is not safe for concurrent
// use, but after Freeze the Registry is read-only and can be shared across goroutines.
type Registry struct {
	// schemas for each (domain, name), sorted by since version.
	schemas map[schemaKey][]*schema.OpSchema
	frozen  bool
}

// NewRegistry returns an empty Registry. See also NewStandardRegistry.
func NewRegistry() *Registry {
	return &Registry{schemas: make(map[schemaKey][]*schema.OpSchema)}
}

// Register adds the schema to the registry.
//
// It fails if the registry is frozen, or if a schema with the same domain, name and since version is
// already registered.
func (r *Registry) Register(s *schema.OpSchema) error {
	if s == nil {
		return errors.New("cannot register a nil schema")
	}
	if r.frozen {
		return errors.Errorf("cannot register %s: registry is frozen", s)
	}
	key := schemaKey{s.Domain(), s.Name()}
	versions := r.schemas[key]
	idx, found := slices.BinarySearchFunc(versions, s.SinceVersion(), func(e *schema.OpSchema, v int) int {
		return cmp.Compare(e.SinceVersion(), v)
	})
	if found {
		return errors.Errorf("schema %s is already registered", s)
	}
	r.schemas[key] = slices.Insert(versions, idx, s)
	klog.V(1).Infof("registered operator schema %s", s)
	return nil
}

// Freeze makes the registry read-only. Calling it more than once is a no-op.
func (r *Registry) Freeze() {
	if r.frozen {
		return
	}
	r.frozen = true
	klog.V(1).Infof("operator schema registry frozen with %d operators", len(r.schemas))
}

// Schema returns the schema of the operator in the given domain ("" for the default ONNX domain) that is
// in effect for opsetVersion: the one with the largest since version <= opsetVersion.
func (r *Registry) Schema(domain, name string, opsetVersion int) (*schema.OpSchema, bool) {
	versions := r.schemas[schemaKey{domain, name}]
	for i := len(versions) - 1; i >= 0; i-- {
		if versions[i].SinceVersion() <= opsetVersion {
			return versions[i], true
		}
	}
	return nil, false
}

// Versions returns the since versions registered for the operator, in increasing order.
func (r *Registry) Versions(domain, name string) []int {
	versions := r.schemas[schemaKey{domain, name}]
	result := make([]int, len(versions))
	for ii, s := range versions {
		result[ii] = s.SinceVersion()
	}
	return result
}

// Schemas returns all the registered schemas, sorted by domain, name and since version.
func (r *Registry) Schemas() []*schema.OpSchema {
	var all []*schema.OpSchema
	for _, versions := range r.schemas {
		all = append(all, versions...)
	}
	slices.SortFunc(all, func(a, b *schema.OpSchema) int {
		return cmp.Or(
			cmp.Compare(a.Domain(), b.Domain()),
			cmp.Compare(a.Name(), b.Name()),
			cmp.Compare(a.SinceVersion(), b.SinceVersion()))
	})
	return all
}

// Len returns the number of registered schemas, counting each version.
func (r *Registry) Len() int {
	var n int
	for _, versions := range r.schemas {
		n += len(versions)
	}
	return n
}
