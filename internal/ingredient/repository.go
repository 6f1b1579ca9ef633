package ingredient

import (
	"context"
	"errors"
)

var (
	ErrZoneExists  = errors.New("zone already exists")
	ErrUnknownZone = errors.New("unknown zone")

	ErrIngredientExists = errors.New("ingredient already exists")
)

type Repository interface {
	ListZones(ctx context.Context) ([]Zone, error)
	CreateZone(ctx context.Context, zone *Zone) error
	ZoneExists(ctx context.Context, id string) (bool, error)

	ListIngredients(ctx context.Context) ([]Ingredient, error)
	FindIngredientByName(ctx context.Context, name string) (*Ingredient, error)
	// CreateIngredient returns ErrIngredientExists when the name is taken.
	CreateIngredient(ctx context.Context, ing *Ingredient) error
}
