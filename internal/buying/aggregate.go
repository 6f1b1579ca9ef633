// Package buying turns the recipes added to a grocery into the list of
// ingredients to buy, grouped by shop zone.
//
// Everything here is pure: no I/O, no shared state. Records are expected to be
// already loaded and normalised by the caller.
package buying

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultUnknownZoneLabel names the group of ingredients without a zone.
const DefaultUnknownZoneLabel = "Sans zone"

// DefaultLanguage drives name ordering when Options.Language is unset.
var DefaultLanguage = language.French

// Options tunes Aggregate. The zero value includes optional ingredients,
// uses DefaultUnknownZoneLabel and DefaultLanguage, and marks nothing checked.
type Options struct {
	ExcludeOptional       bool
	UnknownZoneLabel      string
	CheckedByIngredientID map[string]bool
	Language              language.Tag
}

func (o Options) unknownZoneLabel() string {
	if o.UnknownZoneLabel == "" {
		return DefaultUnknownZoneLabel
	}
	return o.UnknownZoneLabel
}

func (o Options) language() language.Tag {
	if o.Language == language.Und {
		return DefaultLanguage
	}
	return o.Language
}

// Aggregate computes Σ(grocery multiplier × per-recipe quantity) for every
// ingredient and returns one item per ingredient, sorted by zone name then
// ingredient name.
//
// A recipe listed twice in groceryRecipes keeps the last positive multiplier.
// Ingredient lines are never deduplicated: a recipe may list the same
// ingredient twice and both lines count. Lines pointing at an ingredient that
// no longer exists are dropped.
func Aggregate(
	zones []Zone,
	ingredients []Ingredient,
	groceryRecipes []GroceryRecipe,
	recipeIngredients []RecipeIngredient,
	opts Options,
) []Item {

	zoneByID := make(map[string]Zone, len(zones))
	for _, z := range zones {
		zoneByID[z.ID] = z
	}

	ingredientByID := make(map[string]Ingredient, len(ingredients))
	for _, ing := range ingredients {
		ingredientByID[ing.ID] = ing
	}

	multiplier := make(map[string]float64, len(groceryRecipes))
	for _, gr := range groceryRecipes {
		m := finite(gr.Quantity)
		if m <= 0 {
			continue
		}
		multiplier[gr.RecipeID] = m
	}

	// ingredient id -> total, plus first-seen order so output does not depend
	// on map iteration before sorting
	totals := make(map[string]float64)
	var order []string

	for _, ri := range recipeIngredients {
		if opts.ExcludeOptional && ri.Optional {
			continue
		}

		m := multiplier[ri.RecipeID]
		if m <= 0 {
			continue
		}

		add := m * finite(ri.Quantity)
		if add == 0 {
			continue
		}

		if _, seen := totals[ri.IngredientID]; !seen {
			order = append(order, ri.IngredientID)
		}
		totals[ri.IngredientID] += add
	}

	unknown := opts.unknownZoneLabel()
	items := make([]Item, 0, len(order))

	for _, id := range order {
		total := totals[id]
		if total == 0 {
			continue
		}

		ing, ok := ingredientByID[id]
		if !ok {
			continue
		}

		zoneName := unknown
		if ing.ZoneID != nil {
			if z, ok := zoneByID[*ing.ZoneID]; ok {
				zoneName = z.Name
			}
		}

		items = append(items, Item{
			IngredientID:   id,
			IngredientName: ing.Name,
			Unit:           ing.Unit,
			ZoneID:         ing.ZoneID,
			ZoneName:       zoneName,
			TotalQty:       total,
			Checked:        opts.CheckedByIngredientID[id],
		})
	}

	sortItems(items, collate.New(opts.language()))
	return items
}

func sortItems(items []Item, c *collate.Collator) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if z := c.CompareString(a.ZoneName, b.ZoneName); z != 0 {
			return z < 0
		}
		if n := c.CompareString(a.IngredientName, b.IngredientName); n != 0 {
			return n < 0
		}
		return a.IngredientID < b.IngredientID
	})
}
