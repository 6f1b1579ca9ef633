package grocery

import (
	"context"
	"errors"

	"grocerylist/internal/buying"
)

var (
	ErrNotFound          = errors.New("grocery not found")
	ErrAlreadyExists     = errors.New("grocery already exists")
	ErrLineNotFound      = errors.New("grocery line not found")
	ErrUnknownRecipe     = errors.New("unknown recipe")
	ErrUnknownIngredient = errors.New("unknown ingredient")
)

type Repository interface {
	// FindByUser returns ErrNotFound when the user has no grocery yet.
	FindByUser(ctx context.Context, userID string) (*Grocery, error)
	// Create returns ErrAlreadyExists when a grocery was created concurrently.
	Create(ctx context.Context, userID string) (*Grocery, error)

	ListLines(ctx context.Context, groceryID string) ([]Line, error)
	InsertLines(ctx context.Context, rows []LineRow) error
	DeleteLine(ctx context.Context, groceryID string, lineID int64) error
	Clear(ctx context.Context, groceryID string) error

	// Multipliers sums the quantity of every line per recipe.
	Multipliers(ctx context.Context, groceryID string) ([]buying.GroceryRecipe, error)

	CheckedState(ctx context.Context, groceryID string) (map[string]bool, error)
	SetChecked(ctx context.Context, groceryID, ingredientID string, checked bool) error
}
