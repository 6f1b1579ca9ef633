package recipe

import (
	"context"
	"sort"
	"sync"
	"time"

	"grocerylist/internal/buying"

	"github.com/google/uuid"
)

type InMemoryRepository struct {
	mu      sync.RWMutex
	recipes []Recipe
	rows    []Row
	// when set, rows must reference one of these ingredient ids
	known map[string]string
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{}
}

// WithIngredients restricts rows to the given ingredient id -> name set.
func (r *InMemoryRepository) WithIngredients(names map[string]string) *InMemoryRepository {
	r.known = names
	return r
}

func (r *InMemoryRepository) List(_ context.Context) ([]Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]Recipe{}, r.recipes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *InMemoryRepository) ListByName(_ context.Context) ([]Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := append([]Recipe{}, r.recipes...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id string) (*Recipe, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, rec := range r.recipes {
		if rec.ID == id {
			found := rec
			return &found, nil
		}
	}
	return nil, ErrNotFound
}

func (r *InMemoryRepository) Lines(_ context.Context, recipeID string) ([]Line, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	lines := []Line{}
	for _, row := range r.rows {
		if row.RecipeID != recipeID {
			continue
		}
		lines = append(lines, Line{
			IngredientID:   row.IngredientID,
			IngredientName: r.known[row.IngredientID],
			Quantity:       row.Quantity,
			Optional:       row.Optional,
		})
	}
	return lines, nil
}

func (r *InMemoryRepository) Create(_ context.Context, recipe *Recipe, rows []Row) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.known != nil {
		for _, row := range rows {
			if _, ok := r.known[row.IngredientID]; !ok {
				return ErrUnknownIngredient
			}
		}
	}

	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}
	// keep creation order observable even within the same clock tick
	recipe.CreatedAt = time.Now().Add(time.Duration(len(r.recipes)) * time.Millisecond)
	r.recipes = append(r.recipes, *recipe)

	for i := range rows {
		rows[i].RecipeID = recipe.ID
		r.rows = append(r.rows, rows[i])
	}
	return nil
}

func (r *InMemoryRepository) IngredientLines(_ context.Context, recipeIDs []string) ([]buying.RecipeIngredient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[string]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		wanted[id] = true
	}

	lines := []buying.RecipeIngredient{}
	for _, row := range r.rows {
		if !wanted[row.RecipeID] {
			continue
		}
		lines = append(lines, buying.RecipeIngredient{
			RecipeID:     row.RecipeID,
			IngredientID: row.IngredientID,
			Quantity:     row.Quantity,
			Optional:     row.Optional,
		})
	}
	return lines, nil
}
