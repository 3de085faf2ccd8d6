package services

import (
	"sort"
	"sync"

	"github.com/rios0rios0/codestream-agent/internal/domain/entities"
)

// EntityManager is a session scoped cache of entities keyed by id.
type EntityManager[T entities.Identifiable] struct {
	mu    sync.RWMutex
	items map[string]T
}

// NewEntityManager creates an empty EntityManager.
func NewEntityManager[T entities.Identifiable]() *EntityManager[T] {
	return &EntityManager[T]{items: make(map[string]T)}
}

// Put caches entities, replacing existing ones with the same id.
func (it *EntityManager[T]) Put(items ...T) {
	it.mu.Lock()
	defer it.mu.Unlock()
	for _, item := range items {
		it.items[item.GetID()] = item
	}
}

// Get returns the cached entity with the given id.
func (it *EntityManager[T]) Get(id string) (T, bool) {
	it.mu.RLock()
	defer it.mu.RUnlock()
	item, ok := it.items[id]
	return item, ok
}

// Delete drops an entity from the cache.
func (it *EntityManager[T]) Delete(id string) {
	it.mu.Lock()
	defer it.mu.Unlock()
	delete(it.items, id)
}

// All returns every cached entity ordered by id.
func (it *EntityManager[T]) All() []T {
	it.mu.RLock()
	defer it.mu.RUnlock()

	all := make([]T, 0, len(it.items))
	for _, item := range it.items {
		all = append(all, item)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].GetID() < all[j].GetID() })
	return all
}

// Filter returns the cached entities accepted by keep, ordered by id.
func (it *EntityManager[T]) Filter(keep func(T) bool) []T {
	var matched []T
	for _, item := range it.All() {
		if keep(item) {
			matched = append(matched, item)
		}
	}
	return matched
}

// Len returns the number of cached entities.
func (it *EntityManager[T]) Len() int {
	it.mu.RLock()
	defer it.mu.RUnlock()
	return len(it.items)
}
