package recipe

import (
	"context"
	"errors"

	"grocerylist/internal/buying"
)

var (
	ErrNotFound          = errors.New("recipe not found")
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

type Repository interface {
	// newest first
	List(ctx context.Context) ([]Recipe, error)
	// alphabetical
	ListByName(ctx context.Context) ([]Recipe, error)
	Get(ctx context.Context, id string) (*Recipe, error)
	Lines(ctx context.Context, recipeID string) ([]Line, error)

	// Create stores the recipe and its rows atomically; RecipeID on rows is
	// filled by the repository.
	Create(ctx context.Context, recipe *Recipe, rows []Row) error

	IngredientLines(ctx context.Context, recipeIDs []string) ([]buying.RecipeIngredient, error)
}
