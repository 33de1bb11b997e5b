package archive

import (
	"fmt"
	"sort"
	"sync"
)

// SourceFactory builds a Source from the configured base URL.
type SourceFactory func(baseURL string) Source

// Registry manages category source factories.
type Registry interface {
	Register(category string, factory SourceFactory) error
	Create(category, baseURL string) (Source, error)
	ListCategories() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]SourceFactory
}

func NewRegistry() Registry {
	return &registry{factories: make(map[string]SourceFactory)}
}

func (r *registry) Register(category string, factory SourceFactory) error {
	if category == "" {
		return fmt.Errorf("category name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[category]; exists {
		return fmt.Errorf("category %q is already registered", category)
	}
	r.factories[category] = factory
	return nil
}

func (r *registry) Create(category, baseURL string) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[category]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("category %q is not registered", category)
	}
	return factory(baseURL), nil
}

func (r *registry) ListCategories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]string, 0, len(r.factories))
	for category := range r.factories {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
