package recipe

import (
	"time"

	"grocerylist/internal/buying"
)

type Recipe struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedBy *string   `json:"created_by,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Line is one ingredient of a recipe as read back for display.
type Line struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Unit           *string `json:"unit"`
	Quantity       float64 `json:"quantity"`
	Optional       bool    `json:"optional"`
}

// Row is the insert payload for one recipe ingredient.
type Row struct {
	RecipeID     string  `json:"recipe_id"`
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Optional     bool    `json:"optional"`
}

type Detail struct {
	Recipe
	Lines []Line `json:"lines"`
}

// Page is everything the recipe composition screen loads.
type Page struct {
	Ingredients []buying.Ingredient `json:"ingredients"`
	Recipes     []Recipe            `json:"recipes"`
}
