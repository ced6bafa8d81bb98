package lint

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"sync"
)

// ErrConfiguration marks setup-time mistakes by a rule author or config
// writer: malformed rule definitions, empty compose input, duplicate
// registrations. These are fatal at configuration-resolution time and are
// never silently ignored.
var ErrConfiguration = errors.New("configuration error")

// newConfigError builds an ErrConfiguration-wrapped error.
func newConfigError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConfiguration, fmt.Sprintf(format, args...))
}

// Registry holds all registered lint rules.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*Rule
	aliases map[string]string // alias -> canonical name
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]*Rule),
		aliases: make(map[string]string),
	}
}

// Register validates and adds a rule to the registry.
// Invalid rules and duplicate names are configuration errors.
func (r *Registry) Register(rule *Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byName[rule.Name]; exists {
		return newConfigError("rule %q is already registered", rule.Name)
	}
	r.byName[rule.Name] = rule
	return nil
}

// MustRegister registers a rule and panics on configuration errors.
// Intended for init-time registration of built-in rules, where a failure
// is a programming mistake caught by the test suite.
func (r *Registry) MustRegister(rule *Rule) {
	if err := r.Register(rule); err != nil {
		panic(err)
	}
}

// RegisterPlugin registers every rule of the plugin under its namespace,
// "pluginName/ruleName". The plugin name must be non-empty.
func (r *Registry) RegisterPlugin(p Plugin) error {
	if p.Name == "" {
		return newConfigError("plugin has an empty name")
	}

	for _, rule := range p.Rules {
		if rule == nil {
			return newConfigError("plugin %q contains a nil rule", p.Name)
		}
		namespaced := *rule
		namespaced.Name = p.Name + "/" + rule.Name
		if err := r.Register(&namespaced); err != nil {
			return err
		}
	}
	return nil
}

// MustRegisterPlugin registers a plugin and panics on configuration errors.
// Intended for init-time registration, like MustRegister.
func (r *Registry) MustRegisterPlugin(p Plugin) {
	if err := r.RegisterPlugin(p); err != nil {
		panic(err)
	}
}

// RegisterAlias maps an alias to a canonical rule name.
// Used for ESLint-compatible naming (e.g., "no-empty" -> "style/no-empty-block").
func (r *Registry) RegisterAlias(alias, name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.aliases[alias] = name
}

// Get retrieves a rule by its canonical name.
func (r *Registry) Get(name string) (*Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// Resolve returns the canonical name and rule for a given key.
// The key can be a canonical name or a registered alias.
func (r *Registry) Resolve(key string) (string, *Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if rule, ok := r.byName[key]; ok {
		return rule.Name, rule, true
	}
	if target, ok := r.aliases[key]; ok {
		if rule, ok := r.byName[target]; ok {
			return rule.Name, rule, true
		}
	}
	return "", nil, false
}

// Rules returns all registered rules sorted by name.
func (r *Registry) Rules() []*Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Rule, 0, len(r.byName))
	for _, rule := range r.byName {
		result = append(result, rule)
	}

	// Sort by name for consistent, deterministic output.
	slices.SortFunc(result, func(a, b *Rule) int {
		return cmp.Compare(a.Name, b.Name)
	})

	return result
}

// Names returns all registered rule names in sorted order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.byName))
	for name := range r.byName {
		result = append(result, name)
	}

	slices.Sort(result)
	return result
}

// Len returns the number of registered rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byName)
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()
