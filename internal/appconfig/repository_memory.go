package appconfig

import (
	"context"
	"sort"
	"sync"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	entries map[string]string
	err     error
}

func NewInMemoryRepository(entries map[string]string) *InMemoryRepository {
	copied := make(map[string]string, len(entries))
	for k, v := range entries {
		copied[k] = v
	}
	return &InMemoryRepository{entries: copied}
}

func (r *InMemoryRepository) List(_ context.Context) ([]Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return nil, r.err
	}

	out := make([]Entry, 0, len(r.entries))
	for name, value := range r.entries {
		out = append(out, Entry{Name: name, Value: value})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
