// Package registry provides a global registry of game variants.
// Variants register themselves in init() functions, allowing the CLI and the
// variant picker to discover rule sets without hardcoded lists.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/bounce/internal/config"
)

// Variant is a named rule set.
type Variant struct {
	// ID is used on the command line (e.g., "classic", "arcade").
	ID string

	// Title is a human-readable name for display.
	Title string

	// Description is a one-line summary shown by the picker and `variants`.
	Description string

	// Rules returns a fresh copy of the variant's rule set.
	Rules func() config.Rules
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Typically called from an init() function.
// Panics if a variant with the same ID is already registered or has no rules.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	if v.Rules == nil {
		panic(fmt.Sprintf("registry: variant %q has no rules", v.ID))
	}

	variants[v.ID] = v
}

// List returns all registered variants, sorted by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant with the given ID.
// Returns an error if the ID is not registered.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("registry: unknown variant %q", id)
	}

	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
