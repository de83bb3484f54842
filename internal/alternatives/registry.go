package alternatives

import (
	"iter"
	"slices"
)

// Registry is the catalog of known original -> alternate tool mappings.
// It is filled once at startup and only read afterwards.
type Registry struct {
	order []string
	specs map[string]AlternativeSpec
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{specs: make(map[string]AlternativeSpec)}
}

// Register adds the alternative for original, replacing any earlier entry for the same
// tool. A replaced entry keeps its position in registration order.
func (r *Registry) Register(original, alternate, furtherReading string, rules []FlagRule) {
	if _, ok := r.specs[original]; !ok {
		r.order = append(r.order, original)
	}
	r.specs[original] = AlternativeSpec{
		Original:       original,
		Alternate:      alternate,
		FurtherReading: furtherReading,
		Rules:          slices.Clone(rules),
	}
}

// Lookup returns the alternative registered for original.
func (r *Registry) Lookup(original string) (AlternativeSpec, bool) {
	spec, ok := r.specs[original]
	if !ok {
		return AlternativeSpec{}, false
	}
	spec.Rules = slices.Clone(spec.Rules)
	return spec, true
}

// All yields every (original tool, spec) pair in registration order.
// The sequence can be ranged over any number of times.
func (r *Registry) All() iter.Seq2[string, AlternativeSpec] {
	return func(yield func(string, AlternativeSpec) bool) {
		for _, name := range r.order {
			spec, _ := r.Lookup(name)
			if !yield(name, spec) {
				return
			}
		}
	}
}

// Names returns the registered original tool names in registration order.
func (r *Registry) Names() []string {
	return slices.Clone(r.order)
}

func (r *Registry) Len() int {
	return len(r.order)
}
