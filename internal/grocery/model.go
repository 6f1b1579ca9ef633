package grocery

import (
	"time"

	"grocerylist/internal/core"
)

// Grocery is the shopping list of a user. There is at most one per user.
type Grocery struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Line is a recipe added to the grocery, with how many times it is needed.
type Line struct {
	ID         int64     `json:"id"`
	GroceryID  string    `json:"grocery_id"`
	RecipeID   string    `json:"recipe_id"`
	RecipeName string    `json:"recipe_name"`
	Quantity   float64   `json:"quantity"`
	CreatedAt  time.Time `json:"created_at"`
}

// LineRow is the insert payload for one grocery line.
type LineRow struct {
	GroceryID string  `json:"grocery_id"`
	RecipeID  string  `json:"recipe_id"`
	Quantity  float64 `json:"quantity"`
}

// Page is everything the grocery composition screen loads.
type Page struct {
	GroceryID string               `json:"grocery_id"`
	Recipes   []core.RecipeSummary `json:"recipes"`
	Lines     []Line               `json:"lines"`
}
