package ingredient

import (
	"context"
	"errors"

	"grocerylist/internal/db"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// --------------------------------------------------
// Zones
// --------------------------------------------------
func (r *PostgresRepository) ListZones(ctx context.Context) ([]Zone, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, created_at
		FROM zones
		ORDER BY name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	zones := []Zone{}
	for rows.Next() {
		var z Zone
		if err := rows.Scan(&z.ID, &z.Name, &z.CreatedAt); err != nil {
			return nil, err
		}
		zones = append(zones, z)
	}
	return zones, rows.Err()
}

func (r *PostgresRepository) CreateZone(ctx context.Context, zone *Zone) error {
	if zone.ID == "" {
		zone.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO zones (id, name)
		VALUES ($1, $2)
		RETURNING created_at
	`, zone.ID, zone.Name).Scan(&zone.CreatedAt)

	if db.IsUniqueViolation(err) {
		return ErrZoneExists
	}
	return err
}

func (r *PostgresRepository) ZoneExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM zones WHERE id = $1)
	`, id).Scan(&exists)
	return exists, err
}

// --------------------------------------------------
// Ingredients
// --------------------------------------------------
func (r *PostgresRepository) ListIngredients(ctx context.Context) ([]Ingredient, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.id, i.name, i.unit, i.zone_id, z.name, i.created_at
		FROM ingredients i
		LEFT JOIN zones z ON z.id = i.zone_id
		ORDER BY i.name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	ingredients := []Ingredient{}
	for rows.Next() {
		var ing Ingredient
		if err := rows.Scan(
			&ing.ID,
			&ing.Name,
			&ing.Unit,
			&ing.ZoneID,
			&ing.ZoneName,
			&ing.CreatedAt,
		); err != nil {
			return nil, err
		}
		ingredients = append(ingredients, ing)
	}
	return ingredients, rows.Err()
}

// FindIngredientByName returns nil, nil when no ingredient has that name.
func (r *PostgresRepository) FindIngredientByName(ctx context.Context, name string) (*Ingredient, error) {
	var ing Ingredient
	err := r.db.QueryRow(ctx, `
		SELECT id, name, unit, zone_id, created_at
		FROM ingredients
		WHERE name = $1
	`, name).Scan(&ing.ID, &ing.Name, &ing.Unit, &ing.ZoneID, &ing.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ing, nil
}

func (r *PostgresRepository) CreateIngredient(ctx context.Context, ing *Ingredient) error {
	if ing.ID == "" {
		ing.ID = uuid.New().String()
	}

	err := r.db.QueryRow(ctx, `
		INSERT INTO ingredients (id, name, unit, zone_id)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at
	`, ing.ID, ing.Name, ing.Unit, ing.ZoneID).Scan(&ing.CreatedAt)

	if db.IsForeignKeyViolation(err) {
		return ErrUnknownZone
	}
	if db.IsUniqueViolation(err) {
		return ErrIngredientExists
	}
	return err
}
