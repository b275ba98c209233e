package schema

import (
	"fmt"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
)

// Func produces the JSON Schema of one definition.
type Func func() (*jsonschema.Schema, error)

// Registry maps definition names to schema functions. Definitions are
// registered explicitly; nothing is discovered at runtime.
type Registry struct {
	mu   sync.RWMutex
	defs map[string]Func
}

func NewRegistry() *Registry {
	return &Registry{defs: make(map[string]Func)}
}

func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("schema name cannot be empty")
	}
	if fn == nil {
		return fmt.Errorf("schema %q has no generator", name)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.defs[name]; exists {
		return fmt.Errorf("schema %q already registered", name)
	}
	r.defs[name] = fn
	return nil
}

func (r *Registry) MustRegister(name string, fn Func) {
	if err := r.Register(name, fn); err != nil {
		panic(err)
	}
}

func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.defs))
	for name := range r.defs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Dump evaluates every definition. The first failure, including a panic
// inside a generator, aborts the whole dump.
func (r *Registry) Dump() (result map[string]*jsonschema.Schema, err error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var current string
	defer func() {
		if rec := recover(); rec != nil {
			result = nil
			err = fmt.Errorf("schema %q: %v", current, rec)
		}
	}()

	result = make(map[string]*jsonschema.Schema, len(r.defs))
	for name, fn := range r.defs {
		current = name
		s, genErr := fn()
		if genErr != nil {
			return nil, fmt.Errorf("schema %q: %w", name, genErr)
		}
		if s == nil {
			return nil, fmt.Errorf("schema %q: generator returned nil", name)
		}
		result[name] = s
	}
	return result, nil
}

// Reflect returns a Func that derives the schema from the Go type of v.
// Fields without omitempty are required; nested structs are inlined.
func Reflect(v any) Func {
	return func() (*jsonschema.Schema, error) {
		reflector := &jsonschema.Reflector{
			Anonymous:                 true,
			DoNotReference:            true,
			ExpandedStruct:            true,
			AllowAdditionalProperties: true,
		}
		return reflector.Reflect(v), nil
	}
}
