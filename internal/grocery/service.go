package grocery

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"grocerylist/internal/buying"
	"grocerylist/internal/core"
	"grocerylist/internal/selection"

	"github.com/google/uuid"
)

// Validation failures of the grocery composition form, shown to the user as is.
var (
	ErrNoRecipeSelected   = errors.New("select at least one recipe")
	ErrRecipeQtyMissing   = errors.New("every recipe needs a quantity")
	ErrRecipeQtyNotNumber = errors.New("every recipe quantity must be a positive number")
)

// ErrUnavailable wraps any failure to fetch or create the user's grocery.
var ErrUnavailable = errors.New("grocery unavailable")

type Service struct {
	repo    Repository
	recipes core.RecipeReader
	catalog core.CatalogReader

	unknownZoneLabel string
}

func NewService(
	repo Repository,
	recipes core.RecipeReader,
	catalog core.CatalogReader,
	unknownZoneLabel string,
) *Service {
	return &Service{
		repo:             repo,
		recipes:          recipes,
		catalog:          catalog,
		unknownZoneLabel: unknownZoneLabel,
	}
}

// GetOrCreate returns the user's grocery, creating it on first use. When a
// concurrent request wins the insert, the grocery it created is returned.
func (s *Service) GetOrCreate(ctx context.Context, userID string) (*Grocery, error) {
	g, err := s.getOrCreate(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return g, nil
}

func (s *Service) getOrCreate(ctx context.Context, userID string) (*Grocery, error) {
	g, err := s.repo.FindByUser(ctx, userID)
	if err == nil {
		return g, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	g, err = s.repo.Create(ctx, userID)
	if err == nil {
		return g, nil
	}
	if errors.Is(err, ErrAlreadyExists) {
		return s.repo.FindByUser(ctx, userID)
	}
	return nil, err
}

// Load runs the page load sequence: grocery, then recipes, then the grocery
// lines. The first failure aborts the rest.
func (s *Service) Load(ctx context.Context, userID string) (*Page, error) {
	g, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	recipes, err := s.recipes.Summaries(ctx)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}

	lines, err := s.repo.ListLines(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("list grocery lines: %w", err)
	}

	return &Page{GroceryID: g.ID, Recipes: recipes, Lines: lines}, nil
}

// AddRecipes validates the picked recipes, inserts one line per recipe and
// reloads the page.
func (s *Service) AddRecipes(ctx context.Context, userID string, picked selection.State[string]) (*Page, error) {
	quantities, err := selection.Quantities(picked)
	switch {
	case errors.Is(err, selection.ErrNothingSelected):
		return nil, ErrNoRecipeSelected
	case errors.Is(err, selection.ErrMissingQuantity):
		return nil, ErrRecipeQtyMissing
	case errors.Is(err, selection.ErrInvalidQuantity):
		return nil, ErrRecipeQtyNotNumber
	case err != nil:
		return nil, err
	}

	ids := selection.SelectedIDs(picked)
	sort.Strings(ids)

	for _, id := range ids {
		if _, err := uuid.Parse(id); err != nil {
			return nil, ErrUnknownRecipe
		}
	}

	g, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	rows := make([]LineRow, 0, len(ids))
	for _, id := range ids {
		rows = append(rows, LineRow{
			GroceryID: g.ID,
			RecipeID:  id,
			Quantity:  quantities[id],
		})
	}

	if err := s.repo.InsertLines(ctx, rows); err != nil {
		return nil, err
	}

	return s.Load(ctx, userID)
}

func (s *Service) RemoveLine(ctx context.Context, userID string, lineID int64) (*Page, error) {
	g, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.DeleteLine(ctx, g.ID, lineID); err != nil {
		return nil, err
	}

	return s.Load(ctx, userID)
}

// Clear removes every recipe and checked mark from the user's grocery.
func (s *Service) Clear(ctx context.Context, userID string) error {
	g, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return err
	}
	return s.repo.Clear(ctx, g.ID)
}

// BuyingList aggregates the user's grocery into the list of ingredients to
// buy, grouped by zone.
func (s *Service) BuyingList(ctx context.Context, userID string, includeOptional bool) ([]buying.Group, error) {
	g, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	multipliers, err := s.repo.Multipliers(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("load multipliers: %w", err)
	}

	recipeIDs := make([]string, 0, len(multipliers))
	for _, m := range multipliers {
		recipeIDs = append(recipeIDs, m.RecipeID)
	}

	lines, err := s.recipes.IngredientLines(ctx, recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("load recipe ingredients: %w", err)
	}

	zones, ingredients, err := s.catalog.Catalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	checked, err := s.repo.CheckedState(ctx, g.ID)
	if err != nil {
		return nil, fmt.Errorf("load checked state: %w", err)
	}

	items := buying.Aggregate(zones, ingredients, multipliers, lines, buying.Options{
		ExcludeOptional:       !includeOptional,
		UnknownZoneLabel:      s.unknownZoneLabel,
		CheckedByIngredientID: checked,
	})

	return buying.GroupByZone(items), nil
}

// SetChecked records whether an ingredient was picked up and returns the
// refreshed buying list.
func (s *Service) SetChecked(
	ctx context.Context,
	userID string,
	ingredientID string,
	checked bool,
	includeOptional bool,
) ([]buying.Group, error) {

	if _, err := uuid.Parse(ingredientID); err != nil {
		return nil, ErrUnknownIngredient
	}

	g, err := s.GetOrCreate(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetChecked(ctx, g.ID, ingredientID, checked); err != nil {
		return nil, err
	}

	return s.BuyingList(ctx, userID, includeOptional)
}
