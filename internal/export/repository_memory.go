package export

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.Mutex
	exports map[string]*Export
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{exports: make(map[string]*Export)}
}

func (r *InMemoryRepository) Create(_ context.Context, e *Export) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.Status == "" {
		e.Status = StatusPending
	}
	e.CreatedAt = time.Now()
	e.UpdatedAt = e.CreatedAt

	stored := *e
	r.exports[e.ID] = &stored
	return nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.exports[id]
	if !ok {
		return nil, ErrNotFound
	}
	found := *e
	return &found, nil
}

func (r *InMemoryRepository) ClaimPending(_ context.Context) (*Export, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var pending []*Export
	for _, e := range r.exports {
		if e.Status == StatusPending {
			pending = append(pending, e)
		}
	}
	if len(pending) == 0 {
		return nil, nil
	}

	sort.Slice(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})

	claimed := pending[0]
	claimed.Status = StatusProcessing
	claimed.UpdatedAt = time.Now()

	out := *claimed
	return &out, nil
}

func (r *InMemoryRepository) MarkDone(_ context.Context, id, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.exports[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = StatusDone
	e.URL = &url
	e.Error = nil
	e.UpdatedAt = time.Now()
	return nil
}

func (r *InMemoryRepository) MarkFailed(_ context.Context, id, reason string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.exports[id]
	if !ok {
		return ErrNotFound
	}
	e.Status = StatusFailed
	e.Error = &reason
	e.UpdatedAt = time.Now()
	return nil
}
