package recipe

import (
	"context"
	"errors"
	"fmt"

	"grocerylist/internal/buying"
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

func (r *PostgresRepository) List(ctx context.Context) ([]Recipe, error) {
	return r.list(ctx, `
		SELECT id, name, created_by, created_at
		FROM recipes
		ORDER BY created_at DESC
	`)
}

func (r *PostgresRepository) ListByName(ctx context.Context) ([]Recipe, error) {
	return r.list(ctx, `
		SELECT id, name, created_by, created_at
		FROM recipes
		ORDER BY name ASC
	`)
}

func (r *PostgresRepository) list(ctx context.Context, query string) ([]Recipe, error) {
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	recipes := []Recipe{}
	for rows.Next() {
		var rec Recipe
		if err := rows.Scan(&rec.ID, &rec.Name, &rec.CreatedBy, &rec.CreatedAt); err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*Recipe, error) {
	var rec Recipe
	err := r.db.QueryRow(ctx, `
		SELECT id, name, created_by, created_at
		FROM recipes
		WHERE id = $1
	`, id).Scan(&rec.ID, &rec.Name, &rec.CreatedBy, &rec.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PostgresRepository) Lines(ctx context.Context, recipeID string) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ri.ingredient_id, i.name, i.unit, ri.quantity, ri.optional
		FROM recipe_ingredients ri
		JOIN ingredients i ON i.id = ri.ingredient_id
		WHERE ri.recipe_id = $1
		ORDER BY ri.id
	`, recipeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(&l.IngredientID, &l.IngredientName, &l.Unit, &l.Quantity, &l.Optional); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// --------------------------------------------------
// Create recipe + ingredient rows (ATOMIC)
// --------------------------------------------------
func (r *PostgresRepository) Create(ctx context.Context, recipe *Recipe, rows []Row) error {
	if recipe.ID == "" {
		recipe.ID = uuid.New().String()
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO recipes (id, name, created_by)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, recipe.ID, recipe.Name, recipe.CreatedBy).Scan(&recipe.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert recipe: %w", err)
	}

	batch := &pgx.Batch{}
	for i := range rows {
		rows[i].RecipeID = recipe.ID
		batch.Queue(`
			INSERT INTO recipe_ingredients (recipe_id, ingredient_id, quantity, optional)
			VALUES ($1, $2, $3, $4)
		`, rows[i].RecipeID, rows[i].IngredientID, rows[i].Quantity, rows[i].Optional)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrUnknownIngredient
		}
		return fmt.Errorf("insert recipe ingredients: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) IngredientLines(ctx context.Context, recipeIDs []string) ([]buying.RecipeIngredient, error) {
	if len(recipeIDs) == 0 {
		return []buying.RecipeIngredient{}, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, ingredient_id, quantity, optional
		FROM recipe_ingredients
		WHERE recipe_id = ANY($1::uuid[])
		ORDER BY id
	`, recipeIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []buying.RecipeIngredient{}
	for rows.Next() {
		var l buying.RecipeIngredient
		if err := rows.Scan(&l.RecipeID, &l.IngredientID, &l.Quantity, &l.Optional); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
