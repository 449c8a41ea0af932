package schema

import (
	"fmt"
	"sort"
	"sync"
)

// FieldSpec binds one wire field to a model attribute.
type FieldSpec struct {
	// Attr is the model attribute name, used in diagnostics.
	Attr string
	// Wire is the JSON key carrying the field.
	Wire string
	// Type describes the field's wire shape.
	Type *Descriptor
	// Set stores a converted value on the model. The value has the Go
	// type the deserializer produces for Type.
	Set func(model any, value any)
}

// ModelSpec describes how to build and populate one model type.
type ModelSpec struct {
	Name   string
	New    func() any
	Fields []FieldSpec
}

// Registry maps model names to their specs. Registration happens in
// package init functions; lookups are concurrency-safe afterwards.
type Registry struct {
	mu    sync.RWMutex
	specs map[string]*ModelSpec
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]*ModelSpec)}
}

// Register adds a model spec. It panics on a nil spec, an empty name,
// a nil constructor, or a duplicate name: all of these are bugs in
// generated code, not runtime conditions.
func (r *Registry) Register(spec *ModelSpec) {
	if spec == nil || spec.Name == "" {
		panic("schema: Register requires a named spec")
	}
	if spec.New == nil {
		panic(fmt.Sprintf("schema: model %q has no constructor", spec.Name))
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.specs[spec.Name]; exists {
		panic(fmt.Sprintf("schema: model %q registered twice", spec.Name))
	}
	r.specs[spec.Name] = spec
}

// Lookup returns the spec for a model name.
func (r *Registry) Lookup(name string) (*ModelSpec, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	spec, ok := r.specs[name]
	return spec, ok
}

// Names returns all registered model names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.specs))
	for name := range r.specs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the registry that generated models register into.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a model spec to the default registry.
func Register(spec *ModelSpec) {
	defaultRegistry.Register(spec)
}
