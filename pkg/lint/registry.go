package lint

import (
	"sort"
	"sync"

	"github.com/leapstack-labs/rflint/pkg/core"
)

// Factory creates a fresh, unconfigured rule instance.
type Factory func() Rule

// globalRegistry is the single global registry for all lint rules.
var globalRegistry = NewRegistry()

// Registry stores rule factories keyed by rule ID.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a rule factory. A later registration with the same ID replaces
// the earlier one.
func (r *Registry) Register(factory Factory) {
	id := factory().ID()

	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[id] = factory
}

// New returns a fresh instance of the rule with the given ID.
//
//nolint:ireturn // Factories return the Rule interface
func (r *Registry) New(id string) (Rule, bool) {
	r.mu.RLock()
	factory, ok := r.factories[id]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return factory(), true
}

// Has reports whether a rule with the given ID is registered.
func (r *Registry) Has(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[id]
	return ok
}

// IDs returns all registered rule IDs in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.factories))
	for id := range r.factories {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// All returns a fresh instance of every registered rule, sorted by ID.
func (r *Registry) All() []Rule {
	ids := r.IDs()
	rules := make([]Rule, 0, len(ids))
	for _, id := range ids {
		if rule, ok := r.New(id); ok {
			rules = append(rules, rule)
		}
	}
	return rules
}

// ByKind returns fresh instances of the rules of the given kind, sorted by ID.
func (r *Registry) ByKind(kind core.RuleKind) []Rule {
	var rules []Rule
	for _, rule := range r.All() {
		if rule.Kind() == kind {
			rules = append(rules, rule)
		}
	}
	return rules
}

// Count returns the number of registered rules.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.factories)
}

// Clear removes all registered rules. Used for testing.
func (r *Registry) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories = make(map[string]Factory)
}

// Register adds a rule factory to the global registry.
// Call this from init() functions in rule packages.
func Register(factory Factory) {
	globalRegistry.Register(factory)
}

// New returns a fresh instance of a globally registered rule.
//
//nolint:ireturn // Factories return the Rule interface
func New(id string) (Rule, bool) {
	return globalRegistry.New(id)
}

// GetAll returns fresh instances of all globally registered rules.
func GetAll() []Rule {
	return globalRegistry.All()
}

// GetByKind returns fresh instances of globally registered rules of one kind.
func GetByKind(kind core.RuleKind) []Rule {
	return globalRegistry.ByKind(kind)
}

// AllRules returns metadata for all globally registered rules, sorted by ID.
func AllRules() []core.RuleInfo {
	rules := globalRegistry.All()
	infos := make([]core.RuleInfo, 0, len(rules))
	for _, rule := range rules {
		infos = append(infos, GetRuleInfo(rule))
	}
	return infos
}

// GetRuleInfoByID returns metadata for a globally registered rule.
func GetRuleInfoByID(id string) (core.RuleInfo, bool) {
	rule, ok := globalRegistry.New(id)
	if !ok {
		return core.RuleInfo{}, false
	}
	return GetRuleInfo(rule), true
}

// Count returns the number of globally registered rules.
func Count() int {
	return globalRegistry.Count()
}

// DefaultRegistry returns the global registry.
func DefaultRegistry() *Registry {
	return globalRegistry
}
