package core

import (
	"context"

	"grocerylist/internal/buying"
)

// CatalogReader exposes zones and ingredients in the shape the buying
// aggregator consumes.
type CatalogReader interface {
	Catalog(ctx context.Context) ([]buying.Zone, []buying.Ingredient, error)
}

// RecipeSummary is the short form of a recipe shown in pickers.
type RecipeSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// RecipeReader lets the grocery workflow read recipes without owning them.
type RecipeReader interface {
	Summaries(ctx context.Context) ([]RecipeSummary, error)
	IngredientLines(ctx context.Context, recipeIDs []string) ([]buying.RecipeIngredient, error)
}
