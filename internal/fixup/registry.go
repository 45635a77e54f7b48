package fixup

import (
	"errors"
	"fmt"
	"sort"

	"github.com/alnah/go-sitepack/internal/config"
)

// ErrUnknownRule is returned by Registry.Lookup for a name with no rule.
var ErrUnknownRule = errors.New("unknown fixup rule")

// Registry holds the built-in rules plus those declared in the config.
// A config rule with a built-in's name replaces it.
type Registry struct {
	rules map[string]*Rule
}

// NewRegistry compiles the config rules on top of the built-ins.
func NewRegistry(custom []config.FixupRule) (*Registry, error) {
	r := &Registry{rules: make(map[string]*Rule)}
	for _, rule := range Builtins() {
		r.rules[rule.Name] = rule
	}
	for _, c := range custom {
		rule, err := NewRule(c.Name, c.Pattern, c.Replacement, c.Files)
		if err != nil {
			return nil, err
		}
		r.rules[rule.Name] = rule
	}
	return r, nil
}

// Lookup returns the rule called name.
func (r *Registry) Lookup(name string) (*Rule, error) {
	rule, ok := r.rules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
	return rule, nil
}

// Names returns the rule names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.rules))
	for name := range r.rules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
