package buying

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/language"
)

func strp(s string) *string { return &s }

func fixtureZones() []Zone {
	return []Zone{
		{ID: "z1", Name: "Fruits"},
		{ID: "z2", Name: "Épicerie"},
	}
}

func fixtureIngredients() []Ingredient {
	return []Ingredient{
		{ID: "i1", Name: "Tomate", Unit: strp("pcs"), ZoneID: strp("z1")},
		{ID: "i2", Name: "Pâtes", Unit: strp("g"), ZoneID: strp("z2")},
		{ID: "i3", Name: "Sel", Unit: strp("g"), ZoneID: nil},
		{ID: "i4", Name: "Poivre", Unit: nil, ZoneID: strp("z-deleted")},
	}
}

func findItem(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.IngredientID == id {
			return it, true
		}
	}
	return Item{}, false
}

func TestAggregate_EndToEnd(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{
			{RecipeID: "r1", Quantity: 2},
			{RecipeID: "r2", Quantity: 1},
		},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i1", Quantity: 3},
			{RecipeID: "r1", IngredientID: "i2", Quantity: 100},
			{RecipeID: "r2", IngredientID: "i2", Quantity: 50},
		},
		Options{},
	)

	want := []Item{
		{IngredientID: "i2", IngredientName: "Pâtes", Unit: strp("g"), ZoneID: strp("z2"), ZoneName: "Épicerie", TotalQty: 250},
		{IngredientID: "i1", IngredientName: "Tomate", Unit: strp("pcs"), ZoneID: strp("z1"), ZoneName: "Fruits", TotalQty: 6},
	}

	if diff := cmp.Diff(want, items); diff != "" {
		t.Fatalf("unexpected items (-want +got):\n%s", diff)
	}
}

func TestAggregate_SumsSharedIngredientAcrossRecipes(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{
			{RecipeID: "r1", Quantity: 1},
			{RecipeID: "r2", Quantity: 3},
		},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i1", Quantity: 2},
			{RecipeID: "r2", IngredientID: "i1", Quantity: 1},
		},
		Options{},
	)

	tomate, ok := findItem(items, "i1")
	if !ok {
		t.Fatal("expected an item for i1")
	}
	if tomate.TotalQty != 5 {
		t.Fatalf("expected total 5, got %v", tomate.TotalQty)
	}
}

func TestAggregate_DuplicateIngredientLinesBothCount(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{{RecipeID: "r1", Quantity: 2}},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i2", Quantity: 100},
			{RecipeID: "r1", IngredientID: "i2", Quantity: 20},
		},
		Options{},
	)

	pates, _ := findItem(items, "i2")
	if pates.TotalQty != 240 {
		t.Fatalf("expected total 240, got %v", pates.TotalQty)
	}
}

func TestAggregate_DuplicateGroceryRecipeIsLastWins(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{
			{RecipeID: "r1", Quantity: 2},
			{RecipeID: "r1", Quantity: 5},
			{RecipeID: "r1", Quantity: -1},
			{RecipeID: "r1", Quantity: math.NaN()},
		},
		[]RecipeIngredient{{RecipeID: "r1", IngredientID: "i1", Quantity: 1}},
		Options{},
	)

	tomate, _ := findItem(items, "i1")
	if tomate.TotalQty != 5 {
		t.Fatalf("expected last valid multiplier 5, got %v", tomate.TotalQty)
	}
}

func TestAggregate_NonPositiveMultiplierExcludesRecipe(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{
			{RecipeID: "r1", Quantity: 0},
			{RecipeID: "r2", Quantity: math.Inf(1)},
		},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i1", Quantity: 3},
			{RecipeID: "r2", IngredientID: "i2", Quantity: 3},
			{RecipeID: "r3", IngredientID: "i3", Quantity: 3},
		},
		Options{},
	)

	if len(items) != 0 {
		t.Fatalf("expected no items, got %d", len(items))
	}
}

func TestAggregate_OptionalToggle(t *testing.T) {
	grocery := []GroceryRecipe{{RecipeID: "r1", Quantity: 1}}
	lines := []RecipeIngredient{
		{RecipeID: "r1", IngredientID: "i3", Quantity: 10, Optional: true},
		{RecipeID: "r1", IngredientID: "i1", Quantity: 1, Optional: true},
		{RecipeID: "r1", IngredientID: "i1", Quantity: 2},
	}

	included := Aggregate(fixtureZones(), fixtureIngredients(), grocery, lines, Options{})
	sel, ok := findItem(included, "i3")
	if !ok || sel.TotalQty != 10 {
		t.Fatalf("expected optional i3 with total 10, got %+v (found=%v)", sel, ok)
	}

	excluded := Aggregate(fixtureZones(), fixtureIngredients(), grocery, lines, Options{ExcludeOptional: true})
	if _, ok := findItem(excluded, "i3"); ok {
		t.Fatal("expected optional-only ingredient to be absent")
	}
	tomate, _ := findItem(excluded, "i1")
	if tomate.TotalQty != 2 {
		t.Fatalf("expected only the mandatory line to count, got %v", tomate.TotalQty)
	}
}

func TestAggregate_ZoneFallback(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{{RecipeID: "r1", Quantity: 1}},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i1", Quantity: 1},
			{RecipeID: "r1", IngredientID: "i3", Quantity: 1},
			{RecipeID: "r1", IngredientID: "i4", Quantity: 1},
		},
		Options{},
	)

	sel, _ := findItem(items, "i3")
	poivre, _ := findItem(items, "i4")
	if sel.ZoneName != DefaultUnknownZoneLabel || poivre.ZoneName != DefaultUnknownZoneLabel {
		t.Fatalf("expected fallback label, got %q and %q", sel.ZoneName, poivre.ZoneName)
	}

	groups := GroupByZone(items)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[1].ZoneName != DefaultUnknownZoneLabel || len(groups[1].Items) != 2 {
		t.Fatalf("expected both zoneless items in one group, got %+v", groups[1])
	}
}

func TestAggregate_CustomUnknownZoneLabel(t *testing.T) {
	items := Aggregate(
		nil,
		fixtureIngredients(),
		[]GroceryRecipe{{RecipeID: "r1", Quantity: 1}},
		[]RecipeIngredient{{RecipeID: "r1", IngredientID: "i1", Quantity: 1}},
		Options{UnknownZoneLabel: "no zone", Language: language.English},
	)

	if items[0].ZoneName != "no zone" {
		t.Fatalf("expected custom label, got %q", items[0].ZoneName)
	}
}

func TestAggregate_CheckedPassthrough(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{{RecipeID: "r1", Quantity: 1}},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i1", Quantity: 1},
			{RecipeID: "r1", IngredientID: "i2", Quantity: 1},
		},
		Options{CheckedByIngredientID: map[string]bool{"i2": true}},
	)

	for _, it := range items {
		if want := it.IngredientID == "i2"; it.Checked != want {
			t.Fatalf("ingredient %s: expected checked=%v", it.IngredientID, want)
		}
	}
}

func TestAggregate_DropsDanglingIngredient(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{{RecipeID: "r1", Quantity: 1}},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "deleted", Quantity: 4},
			{RecipeID: "r1", IngredientID: "i1", Quantity: 1},
		},
		Options{},
	)

	if len(items) != 1 || items[0].IngredientID != "i1" {
		t.Fatalf("expected only i1, got %+v", items)
	}
}

func TestAggregate_MalformedQuantitiesCoerceToZero(t *testing.T) {
	items := Aggregate(
		fixtureZones(),
		fixtureIngredients(),
		[]GroceryRecipe{{RecipeID: "r1", Quantity: 1}},
		[]RecipeIngredient{
			{RecipeID: "r1", IngredientID: "i1", Quantity: math.NaN()},
			{RecipeID: "r1", IngredientID: "i2", Quantity: 0},
		},
		Options{},
	)

	if len(items) != 0 {
		t.Fatalf("expected no phantom zero items, got %+v", items)
	}
}

func TestAggregate_EmptyInputs(t *testing.T) {
	items := Aggregate(nil, nil, nil, nil, Options{})
	if items == nil || len(items) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", items)
	}
}

func TestAggregate_DoesNotMutateInputs(t *testing.T) {
	lines := []RecipeIngredient{
		{RecipeID: "r1", IngredientID: "i1", Quantity: 1},
		{RecipeID: "r1", IngredientID: "i2", Quantity: 1},
	}
	before := append([]RecipeIngredient(nil), lines...)

	Aggregate(fixtureZones(), fixtureIngredients(), []GroceryRecipe{{RecipeID: "r1", Quantity: 3}}, lines, Options{})

	if diff := cmp.Diff(before, lines); diff != "" {
		t.Fatalf("inputs mutated (-before +after):\n%s", diff)
	}
}

func TestAggregate_DeterministicOrder(t *testing.T) {
	grocery := []GroceryRecipe{{RecipeID: "r1", Quantity: 1}}
	forward := []RecipeIngredient{
		{RecipeID: "r1", IngredientID: "i1", Quantity: 1},
		{RecipeID: "r1", IngredientID: "i2", Quantity: 1},
		{RecipeID: "r1", IngredientID: "i3", Quantity: 1},
	}
	backward := []RecipeIngredient{forward[2], forward[1], forward[0]}

	a := Aggregate(fixtureZones(), fixtureIngredients(), grocery, forward, Options{})
	b := Aggregate(fixtureZones(), fixtureIngredients(), grocery, backward, Options{})

	if diff := cmp.Diff(a, b); diff != "" {
		t.Fatalf("order depends on input order (-forward +backward):\n%s", diff)
	}

	got := []string{a[0].ZoneName, a[1].ZoneName, a[2].ZoneName}
	want := []string{"Épicerie", "Fruits", "Sans zone"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected zone order (-want +got):\n%s", diff)
	}
}
