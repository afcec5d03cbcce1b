package llm

import (
	"fmt"
	"sort"
	"sync"

	"github.com/nulzo/aimind/internal/core/domain"
)

var (
	mu       sync.RWMutex
	dialects = make(map[string]Dialect)
)

// Register makes a dialect available under its kind. It panics on duplicates.
func Register(d Dialect) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := dialects[d.Kind()]; exists {
		panic(fmt.Sprintf("dialect %s already registered", d.Kind()))
	}
	dialects[d.Kind()] = d
}

// Get returns the dialect for kind, or a validation error for unknown kinds.
func Get(kind string) (Dialect, error) {
	mu.RLock()
	defer mu.RUnlock()
	d, ok := dialects[kind]
	if !ok {
		return nil, domain.ValidationError(fmt.Sprintf("unknown provider type %q (known: %v)", kind, kindsLocked()))
	}
	return d, nil
}

// Kinds returns the registered kinds in sorted order.
func Kinds() []string {
	mu.RLock()
	defer mu.RUnlock()
	return kindsLocked()
}

func kindsLocked() []string {
	kinds := make([]string, 0, len(dialects))
	for k := range dialects {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)
	return kinds
}

// ApplyDefaults validates p's kind and fills a blank base URL or model
// from the dialect defaults.
func ApplyDefaults(p domain.ProviderConfig) (domain.ProviderConfig, error) {
	d, err := Get(p.Kind)
	if err != nil {
		return p, err
	}
	def := d.Defaults()
	if p.BaseURL == "" {
		p.BaseURL = def.BaseURL
	}
	if p.Model == "" {
		p.Model = def.Model
	}
	return p, nil
}
