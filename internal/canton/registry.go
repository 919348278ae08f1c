// Package canton holds the pluggable per-canton policy registry. The
// registry itself knows nothing about the export format; extension handlers
// are stored as opaque values and capability-checked by the consumer.
package canton

import (
	"fmt"
	"sort"
	"strings"
)

// Config describes one canton's policy: required documents plus an optional
// extension handler implementing any subset of the export capabilities.
type Config struct {
	Code                 string
	Name                 string
	DocumentRequirements []string
	Extension            any
}

// Registry maps canton codes to configs. It is populated once at startup
// and only appended to afterwards; lookups are case-insensitive.
type Registry struct {
	configs map[string]Config
}

// NewRegistry creates an empty canton registry.
func NewRegistry() *Registry {
	return &Registry{configs: make(map[string]Config)}
}

// Register adds a canton config. Code and name are required; the code is
// normalized to uppercase.
func (r *Registry) Register(cfg Config) error {
	if cfg.Code == "" {
		return fmt.Errorf("canton config missing code")
	}
	if cfg.Name == "" {
		return fmt.Errorf("canton config %q missing name", cfg.Code)
	}
	cfg.Code = strings.ToUpper(cfg.Code)
	r.configs[cfg.Code] = cfg
	return nil
}

// Get returns the config for a code.
func (r *Registry) Get(code string) (Config, bool) {
	cfg, ok := r.configs[strings.ToUpper(code)]
	return cfg, ok
}

// Has reports whether a canton is registered.
func (r *Registry) Has(code string) bool {
	_, ok := r.configs[strings.ToUpper(code)]
	return ok
}

// All returns all registered configs.
func (r *Registry) All() []Config {
	out := make([]Config, 0, len(r.configs))
	for _, code := range r.Codes() {
		out = append(out, r.configs[code])
	}
	return out
}

// Codes returns the registered canton codes, sorted.
func (r *Registry) Codes() []string {
	codes := make([]string, 0, len(r.configs))
	for code := range r.configs {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
