package buying

// Zone is a shelf or aisle used to organise the shopping list.
type Zone struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ingredient may have no unit and no zone.
type Ingredient struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Unit   *string `json:"unit"`
	ZoneID *string `json:"zone_id"`
}

// GroceryRecipe is a recipe added to the grocery.
// Quantity is the multiplier applied to every ingredient of the recipe.
type GroceryRecipe struct {
	RecipeID string  `json:"recipe_id"`
	Quantity float64 `json:"quantity"`
}

// RecipeIngredient is one ingredient line of a recipe, for a single
// execution of that recipe.
type RecipeIngredient struct {
	RecipeID     string  `json:"recipe_id"`
	IngredientID string  `json:"ingredient_id"`
	Quantity     float64 `json:"quantity"`
	Optional     bool    `json:"optional"`
}

// Item is one line of the buying list.
type Item struct {
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Unit           *string `json:"unit"`
	ZoneID         *string `json:"zone_id"`
	ZoneName       string  `json:"zone_name"`
	TotalQty       float64 `json:"total_qty"`
	Checked        bool    `json:"checked"`
}

// Group holds the items of a single zone.
type Group struct {
	ZoneName string `json:"zone_name"`
	Items    []Item `json:"items"`
}
