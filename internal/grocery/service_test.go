package grocery

import (
	"context"
	"errors"
	"testing"

	"grocerylist/internal/buying"
	"grocerylist/internal/core"
	"grocerylist/internal/selection"

	"github.com/stretchr/testify/require"
)

const (
	recipePates = "a1b2c3d4-0000-4000-8000-000000000001"
	recipeSoupe = "b1b2c3d4-0000-4000-8000-000000000002"

	ingPates   = "c1b2c3d4-0000-4000-8000-000000000011"
	ingTomate  = "c1b2c3d4-0000-4000-8000-000000000012"
	ingBasilic = "c1b2c3d4-0000-4000-8000-000000000013"
)

type fakeRecipes struct {
	summaries []core.RecipeSummary
	lines     []buying.RecipeIngredient
	err       error
}

func (f *fakeRecipes) Summaries(context.Context) ([]core.RecipeSummary, error) {
	return f.summaries, f.err
}

func (f *fakeRecipes) IngredientLines(_ context.Context, recipeIDs []string) ([]buying.RecipeIngredient, error) {
	if f.err != nil {
		return nil, f.err
	}
	wanted := make(map[string]bool, len(recipeIDs))
	for _, id := range recipeIDs {
		wanted[id] = true
	}
	var out []buying.RecipeIngredient
	for _, l := range f.lines {
		if wanted[l.RecipeID] {
			out = append(out, l)
		}
	}
	return out, nil
}

type fakeCatalog struct {
	zones       []buying.Zone
	ingredients []buying.Ingredient
}

func (f *fakeCatalog) Catalog(context.Context) ([]buying.Zone, []buying.Ingredient, error) {
	return f.zones, f.ingredients, nil
}

func strPtr(s string) *string { return &s }

func newTestService() (*Service, *InMemoryRepository, *fakeRecipes) {
	repo := NewInMemoryRepository().WithRecipes(map[string]string{
		recipePates: "Pâtes tomate",
		recipeSoupe: "Soupe",
	})
	recipes := &fakeRecipes{
		summaries: []core.RecipeSummary{
			{ID: recipePates, Name: "Pâtes tomate"},
			{ID: recipeSoupe, Name: "Soupe"},
		},
		lines: []buying.RecipeIngredient{
			{RecipeID: recipePates, IngredientID: ingPates, Quantity: 100},
			{RecipeID: recipePates, IngredientID: ingTomate, Quantity: 2},
			{RecipeID: recipePates, IngredientID: ingBasilic, Quantity: 1, Optional: true},
			{RecipeID: recipeSoupe, IngredientID: ingTomate, Quantity: 3},
		},
	}
	catalog := &fakeCatalog{
		zones: []buying.Zone{
			{ID: "z-epicerie", Name: "Épicerie"},
			{ID: "z-legumes", Name: "Légumes"},
		},
		ingredients: []buying.Ingredient{
			{ID: ingPates, Name: "Pâtes", Unit: strPtr("g"), ZoneID: strPtr("z-epicerie")},
			{ID: ingTomate, Name: "Tomate", ZoneID: strPtr("z-legumes")},
			{ID: ingBasilic, Name: "Basilic"},
		},
	}
	return NewService(repo, recipes, catalog, ""), repo, recipes
}

func TestGetOrCreate_CreatesOnce(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	first, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)

	second, err := svc.GetOrCreate(ctx, "user-1")
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
}

func TestGetOrCreate_ConcurrentCreateReselects(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.raceOnCreate = true

	g, err := svc.GetOrCreate(context.Background(), "user-1")
	require.NoError(t, err)
	require.Equal(t, "user-1", g.UserID)
}

func TestGetOrCreate_FailureIsUnavailable(t *testing.T) {
	svc, repo, _ := newTestService()
	repo.findErr = errors.New("connection refused")

	_, err := svc.GetOrCreate(context.Background(), "user-1")
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestLoad_AbortsOnRecipeFailure(t *testing.T) {
	svc, _, recipes := newTestService()
	recipes.err = errors.New("timeout")

	page, err := svc.Load(context.Background(), "user-1")
	require.Error(t, err)
	require.Nil(t, page)
	require.NotErrorIs(t, err, ErrUnavailable)
}

func TestAddRecipes_Validation(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	tests := []struct {
		name   string
		picked selection.State[string]
		want   error
	}{
		{"nothing selected", selection.State[string]{}, ErrNoRecipeSelected},
		{"blank quantity", selection.State[string]{recipePates: "  "}, ErrRecipeQtyMissing},
		{"not a number", selection.State[string]{recipePates: "deux"}, ErrRecipeQtyNotNumber},
		{"negative", selection.State[string]{recipePates: "-1"}, ErrRecipeQtyNotNumber},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.AddRecipes(ctx, "user-1", tt.picked)
			require.ErrorIs(t, err, tt.want)
		})
	}

	require.Empty(t, repo.lines)
}

func TestAddRecipes_InsertsAndReloads(t *testing.T) {
	svc, _, _ := newTestService()

	page, err := svc.AddRecipes(context.Background(), "user-1", selection.State[string]{
		recipeSoupe: "1",
		recipePates: "2,5",
	})
	require.NoError(t, err)
	require.Len(t, page.Recipes, 2)
	require.Len(t, page.Lines, 2)

	require.Equal(t, recipePates, page.Lines[0].RecipeID)
	require.Equal(t, 2.5, page.Lines[0].Quantity)
	require.Equal(t, "Pâtes tomate", page.Lines[0].RecipeName)
	require.Equal(t, recipeSoupe, page.Lines[1].RecipeID)
	for _, l := range page.Lines {
		require.Equal(t, page.GroceryID, l.GroceryID)
	}
}

func TestAddRecipes_UnknownRecipe(t *testing.T) {
	svc, repo, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddRecipes(ctx, "user-1", selection.State[string]{"d1b2c3d4-0000-4000-8000-0000000000ff": "1"})
	require.ErrorIs(t, err, ErrUnknownRecipe)

	_, err = svc.AddRecipes(ctx, "user-1", selection.State[string]{"soupe": "1", recipePates: "1"})
	require.ErrorIs(t, err, ErrUnknownRecipe)
	require.Empty(t, repo.lines)
}

func TestSetChecked_MalformedIngredientID(t *testing.T) {
	svc, repo, _ := newTestService()

	_, err := svc.SetChecked(context.Background(), "user-1", "tomate", true, true)
	require.ErrorIs(t, err, ErrUnknownIngredient)
	require.Empty(t, repo.checked)
}

func TestRemoveLineAndClear(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	page, err := svc.AddRecipes(ctx, "user-1", selection.State[string]{recipePates: "1", recipeSoupe: "1"})
	require.NoError(t, err)

	page, err = svc.RemoveLine(ctx, "user-1", page.Lines[0].ID)
	require.NoError(t, err)
	require.Len(t, page.Lines, 1)

	_, err = svc.RemoveLine(ctx, "user-1", 999)
	require.ErrorIs(t, err, ErrLineNotFound)

	require.NoError(t, svc.Clear(ctx, "user-1"))
	page, err = svc.Load(ctx, "user-1")
	require.NoError(t, err)
	require.Empty(t, page.Lines)
}

func TestBuyingList_AggregatesAndGroups(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddRecipes(ctx, "user-1", selection.State[string]{recipePates: "2", recipeSoupe: "1"})
	require.NoError(t, err)

	groups, err := svc.BuyingList(ctx, "user-1", true)
	require.NoError(t, err)
	require.Len(t, groups, 3)

	require.Equal(t, "Épicerie", groups[0].ZoneName)
	require.Equal(t, 200.0, groups[0].Items[0].TotalQty)

	require.Equal(t, "Légumes", groups[1].ZoneName)
	require.Equal(t, "Tomate", groups[1].Items[0].IngredientName)
	require.Equal(t, 7.0, groups[1].Items[0].TotalQty)

	require.Equal(t, buying.DefaultUnknownZoneLabel, groups[2].ZoneName)
	require.Equal(t, "Basilic", groups[2].Items[0].IngredientName)

	groups, err = svc.BuyingList(ctx, "user-1", false)
	require.NoError(t, err)
	require.Len(t, groups, 2)
}

func TestBuyingList_RepeatedAdditionsAreSummed(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddRecipes(ctx, "user-1", selection.State[string]{recipeSoupe: "1"})
	require.NoError(t, err)
	_, err = svc.AddRecipes(ctx, "user-1", selection.State[string]{recipeSoupe: "2"})
	require.NoError(t, err)

	groups, err := svc.BuyingList(ctx, "user-1", true)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, 9.0, groups[0].Items[0].TotalQty)
}

func TestSetChecked_IsReflectedInBuyingList(t *testing.T) {
	svc, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.AddRecipes(ctx, "user-1", selection.State[string]{recipeSoupe: "1"})
	require.NoError(t, err)

	groups, err := svc.SetChecked(ctx, "user-1", ingTomate, true, true)
	require.NoError(t, err)
	require.True(t, groups[0].Items[0].Checked)

	groups, err = svc.SetChecked(ctx, "user-1", ingTomate, false, true)
	require.NoError(t, err)
	require.False(t, groups[0].Items[0].Checked)
}

func TestBuyingList_EmptyGrocery(t *testing.T) {
	svc, _, _ := newTestService()

	groups, err := svc.BuyingList(context.Background(), "user-1", true)
	require.NoError(t, err)
	require.Empty(t, groups)
}
