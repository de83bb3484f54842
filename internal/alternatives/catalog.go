package alternatives

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
	"terminalist/internal/logger"
)

//go:embed catalog.yaml
var builtinCatalog []byte

// ErrInvalidCatalog is returned when a catalog document is well-formed YAML but
// describes an entry or rule that cannot be registered.
var ErrInvalidCatalog = errors.New("invalid catalog")

// ParseCatalog decodes a catalog document and validates its entries.
// This expects the structure: alternatives: [ {original, alternate, further_reading, flags: [...]}, ... ]
func ParseCatalog(data []byte) ([]AlternativeSpec, error) {
	var wrapper struct {
		Alternatives []AlternativeSpec `yaml:"alternatives"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog: %w", err)
	}

	for i, spec := range wrapper.Alternatives {
		if spec.Original == "" || spec.Alternate == "" {
			return nil, fmt.Errorf("%w: entry %d needs both original and alternate", ErrInvalidCatalog, i)
		}
		for j, rule := range spec.Rules {
			if rule.Original == "" || rule.New == "" {
				return nil, fmt.Errorf("%w: %s flag %d needs both flag and replacement", ErrInvalidCatalog, spec.Original, j)
			}
			if rule.Consume < 0 {
				return nil, fmt.Errorf("%w: %s flag %s has negative consume %d", ErrInvalidCatalog, spec.Original, rule.Original, rule.Consume)
			}
		}
	}
	return wrapper.Alternatives, nil
}

// Builtin returns the alternatives shipped with terminalist.
func Builtin() []AlternativeSpec {
	specs, err := ParseCatalog(builtinCatalog)
	if err != nil {
		// Embedded data; catalog_test.go parses it on every run
		panic("Failed to parse built-in catalog: " + err.Error())
	}
	return specs
}

// Load builds the registry from the built-in catalog followed by each extra catalog file.
// Later files override earlier entries for the same original tool.
func Load(catalogFiles ...string) (*Registry, error) {
	reg := NewRegistry()
	registerAll(reg, Builtin())

	for _, path := range catalogFiles {
		// ----- Load user catalog -----
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read catalog %s: %w", path, err)
		}
		specs, err := ParseCatalog(data)
		if err != nil {
			return nil, fmt.Errorf("catalog %s: %w", path, err)
		}
		logger.Debug("[DEBUG] Loaded %d alternatives from %s\n", len(specs), path)
		for _, spec := range specs {
			if prev, ok := reg.Lookup(spec.Original); ok {
				logger.Warn("[WARN] %s overrides %s -> %s with %s -> %s\n", path, prev.Original, prev.Alternate, spec.Original, spec.Alternate)
			}
		}
		registerAll(reg, specs)
	}

	logger.Debug("[DEBUG] Registry holds %d alternatives\n", reg.Len())
	return reg, nil
}

func registerAll(reg *Registry, specs []AlternativeSpec) {
	for _, spec := range specs {
		reg.Register(spec.Original, spec.Alternate, spec.FurtherReading, spec.Rules)
	}
}
