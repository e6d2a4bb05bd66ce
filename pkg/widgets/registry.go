package widgets

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-olxgui/pkg/markup"
	"github.com/goliatone/go-olxgui/pkg/snippet"
)

// Matcher decides whether a widget kind should handle the supplied parameters
// when the caller did not name a kind.
type Matcher func(params *markup.Attrs) bool

type rule struct {
	kind     Kind
	priority int
	match    Matcher
	order    int
}

// Registry holds widget definitions and the matchers used to infer a kind
// from parameters. Higher priority wins; ties fall back to registration order.
type Registry struct {
	mu          sync.RWMutex
	definitions map[Kind]Definition
	rules       []rule
}

// NewRegistry constructs a registry with the built-in definitions and
// matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{definitions: make(map[Kind]Definition)}
	reg.registerBuiltins()
	return reg
}

// Register stores a definition, replacing any previous one of the same kind.
func (r *Registry) Register(def Definition) error {
	kind := Kind(strings.TrimSpace(string(def.Kind)))
	if kind == "" {
		return fmt.Errorf("widgets: definition kind is required")
	}
	if strings.TrimSpace(def.SnippetPath) == "" {
		return fmt.Errorf("widgets: snippet path for %q is required", kind)
	}
	def.Kind = kind
	def = def.clone()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.definitions == nil {
		r.definitions = make(map[Kind]Definition)
	}
	r.definitions[kind] = def
	return nil
}

// MustRegister panics on registration failure. Useful for init-time wiring.
func (r *Registry) MustRegister(def Definition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Definition returns a copy of the definition registered for kind.
func (r *Registry) Definition(kind Kind) (Definition, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	def, ok := r.definitions[kind]
	if !ok {
		return Definition{}, false
	}
	return def.clone(), true
}

// Kinds returns the registered kinds sorted by name.
func (r *Registry) Kinds() []Kind {
	r.mu.RLock()
	defer r.mu.RUnlock()
	kinds := make([]Kind, 0, len(r.definitions))
	for kind := range r.definitions {
		kinds = append(kinds, kind)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	return kinds
}

// Match adds a matcher used by Resolve.
func (r *Registry) Match(kind Kind, priority int, matcher Matcher) {
	if r == nil || matcher == nil || strings.TrimSpace(string(kind)) == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rules = append(r.rules, rule{
		kind:     kind,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve infers a widget kind from parameters.
func (r *Registry) Resolve(params *markup.Attrs) (Kind, bool) {
	if r == nil {
		return "", false
	}
	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()
	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(params) {
			return entry.kind, true
		}
	}
	return "", false
}

// Build creates a component of the given kind. An empty kind is resolved from
// params. Definition defaults are copied before caller overrides are merged,
// so builds never share parameter storage.
func (r *Registry) Build(kind Kind, params *markup.Attrs, opts ...snippet.Option) (*snippet.Component, error) {
	if kind == "" {
		resolved, ok := r.Resolve(params)
		if !ok {
			return nil, fmt.Errorf("widgets: cannot infer widget kind from parameters %v", params.Keys())
		}
		kind = resolved
	}
	def, ok := r.Definition(kind)
	if !ok {
		return nil, fmt.Errorf("widgets: unknown widget kind %q", kind)
	}

	merged := def.Defaults.Clone()
	overrides := params.Clone()
	phil := overrides.Value(ParamPhil)
	if overrides.Has(ParamPhil) {
		_ = overrides.Delete(ParamPhil)
	}
	merged.Merge(overrides)

	if phil != "" {
		expandPhil(def.Phil, phil, merged)
	}
	if def.NameFromValue && merged.Value("name") == "" {
		merged.Set("name", merged.Value("value"))
	}
	for _, key := range def.Required {
		if merged.Value(key) == "" {
			return nil, &snippet.ParameterError{Reason: fmt.Sprintf("%s widget requires %q", kind, key)}
		}
	}

	return snippet.New(def.SnippetPath, merged, opts...)
}

// MustBuild panics when Build fails.
func (r *Registry) MustBuild(kind Kind, params *markup.Attrs, opts ...snippet.Option) *snippet.Component {
	comp, err := r.Build(kind, params, opts...)
	if err != nil {
		panic(err)
	}
	return comp
}

func (r *Registry) registerBuiltins() {
	for _, def := range builtinDefinitions() {
		r.MustRegister(def)
	}

	r.Match(Checkbox, 90, func(params *markup.Attrs) bool {
		return params.Has("checked") || params.Has("oncheck") || params.Has("onuncheck")
	})
	r.Match(Combo, 80, func(params *markup.Attrs) bool {
		return params.Has("items")
	})
	r.Match(Spinner, 70, func(params *markup.Attrs) bool {
		return params.Has("min") || params.Has("max")
	})
	r.Match(Button, 60, func(params *markup.Attrs) bool {
		return params.Has("onclick")
	})
	r.Match(Text, 10, func(params *markup.Attrs) bool {
		return params.Has("value") || params.Has(ParamPhil)
	})
}

var defaultRegistry = NewRegistry()

// Default returns the shared registry holding the built-in definitions.
func Default() *Registry { return defaultRegistry }

// Build uses the default registry.
func Build(kind Kind, params *markup.Attrs, opts ...snippet.Option) (*snippet.Component, error) {
	return defaultRegistry.Build(kind, params, opts...)
}
