package ingredient

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests and local runs without Postgres.
type InMemoryRepository struct {
	mu          sync.RWMutex
	zones       []Zone
	ingredients []Ingredient

	// stored right before the next CreateIngredient, as if a concurrent
	// request had won the insert
	raceOnCreate *Ingredient
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

func (r *InMemoryRepository) ListZones(_ context.Context) ([]Zone, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]Zone(nil), r.zones...)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) CreateZone(_ context.Context, zone *Zone) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, z := range r.zones {
		if z.Name == zone.Name {
			return ErrZoneExists
		}
	}
	if zone.ID == "" {
		zone.ID = uuid.New().String()
	}
	zone.CreatedAt = time.Now()
	r.zones = append(r.zones, *zone)
	return nil
}

func (r *InMemoryRepository) ZoneExists(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, z := range r.zones {
		if z.ID == id {
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepository) ListIngredients(_ context.Context) ([]Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Ingredient, 0, len(r.ingredients))
	for _, ing := range r.ingredients {
		if ing.ZoneID != nil {
			for _, z := range r.zones {
				if z.ID == *ing.ZoneID {
					name := z.Name
					ing.ZoneName = &name
				}
			}
		}
		out = append(out, ing)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) FindIngredientByName(_ context.Context, name string) (*Ingredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ing := range r.ingredients {
		if ing.Name == name {
			found := ing
			return &found, nil
		}
	}
	return nil, nil
}

func (r *InMemoryRepository) CreateIngredient(_ context.Context, ing *Ingredient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.raceOnCreate != nil {
		// another request stores the same name first
		r.ingredients = append(r.ingredients, *r.raceOnCreate)
		r.raceOnCreate = nil
	}

	for _, existing := range r.ingredients {
		if existing.Name == ing.Name {
			return ErrIngredientExists
		}
	}

	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}
	ing.CreatedAt = time.Now()
	r.ingredients = append(r.ingredients, *ing)
	return nil
}
