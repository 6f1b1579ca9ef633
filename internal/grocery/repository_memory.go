package grocery

import (
	"context"
	"sync"
	"time"

	"grocerylist/internal/buying"

	"github.com/google/uuid"
)

// InMemoryRepository backs tests. The err fields force failures on the
// matching calls.
type InMemoryRepository struct {
	mu        sync.Mutex
	groceries map[string]*Grocery
	lines     []Line
	checked   map[string]map[string]bool
	nextLine  int64

	// recipe id -> name; when set, lines must reference a known recipe
	recipes map[string]string

	findErr   error
	createErr error
	insertErr error
	// raceOnCreate makes the next Create behave as if another request
	// created the grocery first
	raceOnCreate bool
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		groceries: make(map[string]*Grocery),
		checked:   make(map[string]map[string]bool),
	}
}

func (r *InMemoryRepository) WithRecipes(names map[string]string) *InMemoryRepository {
	r.recipes = names
	return r
}

func (r *InMemoryRepository) FindByUser(_ context.Context, userID string) (*Grocery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.findErr != nil {
		return nil, r.findErr
	}
	g, ok := r.groceries[userID]
	if !ok {
		return nil, ErrNotFound
	}
	found := *g
	return &found, nil
}

func (r *InMemoryRepository) Create(_ context.Context, userID string) (*Grocery, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.createErr != nil {
		return nil, r.createErr
	}

	if r.raceOnCreate {
		r.raceOnCreate = false
		r.groceries[userID] = &Grocery{ID: uuid.New().String(), UserID: userID, CreatedAt: time.Now()}
		return nil, ErrAlreadyExists
	}

	if _, ok := r.groceries[userID]; ok {
		return nil, ErrAlreadyExists
	}

	g := &Grocery{ID: uuid.New().String(), UserID: userID, CreatedAt: time.Now()}
	r.groceries[userID] = g
	created := *g
	return &created, nil
}

func (r *InMemoryRepository) ListLines(_ context.Context, groceryID string) ([]Line, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []Line{}
	for _, l := range r.lines {
		if l.GroceryID == groceryID {
			out = append(out, l)
		}
	}
	return out, nil
}

func (r *InMemoryRepository) InsertLines(_ context.Context, rows []LineRow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.insertErr != nil {
		return r.insertErr
	}
	if r.recipes != nil {
		for _, row := range rows {
			if _, ok := r.recipes[row.RecipeID]; !ok {
				return ErrUnknownRecipe
			}
		}
	}

	for _, row := range rows {
		r.nextLine++
		r.lines = append(r.lines, Line{
			ID:         r.nextLine,
			GroceryID:  row.GroceryID,
			RecipeID:   row.RecipeID,
			RecipeName: r.recipes[row.RecipeID],
			Quantity:   row.Quantity,
			CreatedAt:  time.Now(),
		})
	}
	return nil
}

func (r *InMemoryRepository) DeleteLine(_ context.Context, groceryID string, lineID int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, l := range r.lines {
		if l.ID == lineID && l.GroceryID == groceryID {
			r.lines = append(r.lines[:i], r.lines[i+1:]...)
			return nil
		}
	}
	return ErrLineNotFound
}

func (r *InMemoryRepository) Clear(_ context.Context, groceryID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.lines[:0]
	for _, l := range r.lines {
		if l.GroceryID != groceryID {
			kept = append(kept, l)
		}
	}
	r.lines = kept
	delete(r.checked, groceryID)
	return nil
}

func (r *InMemoryRepository) Multipliers(_ context.Context, groceryID string) ([]buying.GroceryRecipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sums := make(map[string]float64)
	var order []string
	for _, l := range r.lines {
		if l.GroceryID != groceryID {
			continue
		}
		if _, ok := sums[l.RecipeID]; !ok {
			order = append(order, l.RecipeID)
		}
		sums[l.RecipeID] += l.Quantity
	}

	out := make([]buying.GroceryRecipe, 0, len(order))
	for _, id := range order {
		out = append(out, buying.GroceryRecipe{RecipeID: id, Quantity: sums[id]})
	}
	return out, nil
}

func (r *InMemoryRepository) CheckedState(_ context.Context, groceryID string) (map[string]bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make(map[string]bool, len(r.checked[groceryID]))
	for k, v := range r.checked[groceryID] {
		out[k] = v
	}
	return out, nil
}

func (r *InMemoryRepository) SetChecked(_ context.Context, groceryID, ingredientID string, checked bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.checked[groceryID] == nil {
		r.checked[groceryID] = make(map[string]bool)
	}
	r.checked[groceryID][ingredientID] = checked
	return nil
}
