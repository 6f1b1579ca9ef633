package ingredient

import (
	"context"
	"errors"
	"strings"

	"grocerylist/internal/buying"

	"github.com/google/uuid"
)

var (
	ErrEmptyName = errors.New("name is empty")
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ListZones(ctx context.Context) ([]Zone, error) {
	return s.repo.ListZones(ctx)
}

func (s *Service) CreateZone(ctx context.Context, name string) (*Zone, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	zone := &Zone{Name: name}
	if err := s.repo.CreateZone(ctx, zone); err != nil {
		return nil, err
	}
	return zone, nil
}

func (s *Service) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	return s.repo.ListIngredients(ctx)
}

// CreateIngredient adds an ingredient to the catalog. Creating a name that
// already exists returns the existing ingredient unchanged, with created
// reporting false. This holds when a concurrent request inserts the same
// name between the lookup and the insert.
func (s *Service) CreateIngredient(
	ctx context.Context,
	name string,
	unit string,
	zoneID string,
) (ing *Ingredient, created bool, err error) {

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false, ErrEmptyName
	}

	existing, err := s.repo.FindIngredientByName(ctx, name)
	if err != nil {
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	ing = &Ingredient{Name: name}

	if u := strings.TrimSpace(unit); u != "" {
		ing.Unit = &u
	}

	if z := strings.TrimSpace(zoneID); z != "" {
		if _, err := uuid.Parse(z); err != nil {
			return nil, false, ErrUnknownZone
		}
		ok, err := s.repo.ZoneExists(ctx, z)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			return nil, false, ErrUnknownZone
		}
		ing.ZoneID = &z
	}

	err = s.repo.CreateIngredient(ctx, ing)
	if errors.Is(err, ErrIngredientExists) {
		existing, err := s.repo.FindIngredientByName(ctx, name)
		if err != nil {
			return nil, false, err
		}
		if existing == nil {
			return nil, false, ErrIngredientExists
		}
		return existing, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return ing, true, nil
}

// Catalog returns zones and ingredients as buying records.
func (s *Service) Catalog(ctx context.Context) ([]buying.Zone, []buying.Ingredient, error) {
	zones, err := s.repo.ListZones(ctx)
	if err != nil {
		return nil, nil, err
	}

	ingredients, err := s.repo.ListIngredients(ctx)
	if err != nil {
		return nil, nil, err
	}

	bz := make([]buying.Zone, 0, len(zones))
	for _, z := range zones {
		bz = append(bz, buying.Zone{ID: z.ID, Name: z.Name})
	}

	bi := make([]buying.Ingredient, 0, len(ingredients))
	for _, ing := range ingredients {
		bi = append(bi, buying.Ingredient{
			ID:     ing.ID,
			Name:   ing.Name,
			Unit:   ing.Unit,
			ZoneID: ing.ZoneID,
		})
	}

	return bz, bi, nil
}
