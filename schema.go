package vastcheck

import (
	"errors"
	"fmt"
)

// ContextSchema holds the parameter tiers for one implementation type.
// Tier order, and parameter order within a tier, are significant: issues are
// reported in declaration order.
type ContextSchema struct {
	// Required parameters must be present on every request.
	Required []Param
	// ProgrammaticRequired parameters must be present on programmatic
	// requests. On non-programmatic requests they are never reported
	// missing, but supplied values are still type-checked.
	ProgrammaticRequired []Param
	// ProgrammaticRecommended parameters are never required; absence is
	// reported as an advisory finding, supplied values are type-checked.
	ProgrammaticRecommended []Param
}

// ErrUnknownImplementation is returned by SchemaFor for implementation types
// outside the fixed set.
var ErrUnknownImplementation = errors.New("unknown implementation type")

// Implementations lists the supported implementation types in the order they
// are reported to callers.
var Implementations = []string{"web", "app", "ctv", "audio", "doh"}

// SchemaFor returns the parameter schema for the given implementation type.
func SchemaFor(impl string) (*ContextSchema, error) {
	s, ok := registry[impl]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownImplementation, impl)
	}
	return s, nil
}

func (s *ContextSchema) tiers() [][]Param {
	return [][]Param{s.Required, s.ProgrammaticRequired, s.ProgrammaticRecommended}
}

// The registry is static data. A parameter typed differently across the
// tiers of one context is a bug in the table, not bad input, so it fails
// loudly at init.
func init() {
	for _, impl := range Implementations {
		schema, ok := registry[impl]
		if !ok {
			panic(fmt.Sprintf("vastcheck: no schema registered for %q", impl))
		}
		seen := map[string]string{}
		for _, tier := range schema.tiers() {
			for _, p := range tier {
				kind := fmt.Sprintf("%T", p.Rule)
				if prev, ok := seen[p.Name]; ok && prev != kind {
					panic(fmt.Sprintf("vastcheck: %s.%s typed as both %s and %s", impl, p.Name, prev, kind))
				}
				seen[p.Name] = kind
			}
		}
	}
}
