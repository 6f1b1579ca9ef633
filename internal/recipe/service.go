package recipe

import (
	"context"
	"errors"
	"sort"
	"strings"

	"grocerylist/internal/buying"
	"grocerylist/internal/core"
	"grocerylist/internal/selection"

	"github.com/google/uuid"
)

// Validation failures of the recipe composition form. Their text is shown
// to the user as is.
var (
	ErrEmptyName              = errors.New("recipe name is empty")
	ErrNoIngredientSelected   = errors.New("select at least one ingredient")
	ErrIngredientQtyMissing   = errors.New("every ingredient needs a quantity")
	ErrIngredientQtyNotNumber = errors.New("every ingredient quantity must be a positive number")
)

type Service struct {
	repo    Repository
	catalog core.CatalogReader
}

func NewService(repo Repository, catalog core.CatalogReader) *Service {
	return &Service{repo: repo, catalog: catalog}
}

// Load fetches the ingredient catalog then the recipes, in that order.
func (s *Service) Load(ctx context.Context) (*Page, error) {
	_, ingredients, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, err
	}

	recipes, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return &Page{Ingredients: ingredients, Recipes: recipes}, nil
}

// Create validates the form and stores the recipe with one row per picked
// ingredient. optional lists picked ingredients that may be skipped when
// shopping; ids in it that were not picked are ignored.
func (s *Service) Create(
	ctx context.Context,
	userID string,
	name string,
	picked selection.State[string],
	optional []string,
) (*Detail, error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	quantities, err := selection.Quantities(picked)
	switch {
	case errors.Is(err, selection.ErrNothingSelected):
		return nil, ErrNoIngredientSelected
	case errors.Is(err, selection.ErrMissingQuantity):
		return nil, ErrIngredientQtyMissing
	case errors.Is(err, selection.ErrInvalidQuantity):
		return nil, ErrIngredientQtyNotNumber
	case err != nil:
		return nil, err
	}

	isOptional := make(map[string]bool, len(optional))
	for _, id := range optional {
		isOptional[id] = true
	}

	ids := selection.SelectedIDs(picked)
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return nil, ErrUnknownIngredient
		}
	}

	rows := make([]Row, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, Row{
			IngredientID: id,
			Quantity:     quantities[id],
			Optional:     isOptional[id],
		})
	}

	rec := &Recipe{Name: name}
	if userID != "" {
		rec.CreatedBy = &userID
	}

	if err := s.repo.Create(ctx, rec, rows); err != nil {
		return nil, err
	}

	lines, err := s.repo.Lines(ctx, rec.ID)
	if err != nil {
		return nil, err
	}

	return &Detail{Recipe: *rec, Lines: lines}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrNotFound
	}

	rec, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	lines, err := s.repo.Lines(ctx, id)
	if err != nil {
		return nil, err
	}

	return &Detail{Recipe: *rec, Lines: lines}, nil
}

// Summaries lists recipes alphabetically for the grocery picker.
func (s *Service) Summaries(ctx context.Context) ([]core.RecipeSummary, error) {
	recipes, err := s.repo.ListByName(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]core.RecipeSummary, 0, len(recipes))
	for _, rec := range recipes {
		out = append(out, core.RecipeSummary{ID: rec.ID, Name: rec.Name})
	}
	return out, nil
}

func (s *Service) IngredientLines(ctx context.Context, recipeIDs []string) ([]buying.RecipeIngredient, error) {
	return s.repo.IngredientLines(ctx, recipeIDs)
}
