package grocery

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

func (r *PostgresRepository) FindByUser(ctx context.Context, userID string) (*Grocery, error) {
	var g Grocery
	err := r.db.QueryRow(ctx, `
		SELECT id, user_id, created_at
		FROM groceries
		WHERE user_id = $1
	`, userID).Scan(&g.ID, &g.UserID, &g.CreatedAt)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, userID string) (*Grocery, error) {
	g := Grocery{ID: uuid.New().String(), UserID: userID}

	err := r.db.QueryRow(ctx, `
		INSERT INTO groceries (id, user_id)
		VALUES ($1, $2)
		RETURNING created_at
	`, g.ID, g.UserID).Scan(&g.CreatedAt)

	if db.IsUniqueViolation(err) {
		return nil, ErrAlreadyExists
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

func (r *PostgresRepository) ListLines(ctx context.Context, groceryID string) ([]Line, error) {
	rows, err := r.db.Query(ctx, `
		SELECT gr.id, gr.grocery_id, gr.recipe_id, r.name, gr.quantity, gr.created_at
		FROM grocery_recipes gr
		JOIN recipes r ON r.id = gr.recipe_id
		WHERE gr.grocery_id = $1
		ORDER BY gr.created_at, gr.id
	`, groceryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	lines := []Line{}
	for rows.Next() {
		var l Line
		if err := rows.Scan(
			&l.ID,
			&l.GroceryID,
			&l.RecipeID,
			&l.RecipeName,
			&l.Quantity,
			&l.CreatedAt,
		); err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

func (r *PostgresRepository) InsertLines(ctx context.Context, rows []LineRow) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO grocery_recipes (grocery_id, recipe_id, quantity)
			VALUES ($1, $2, $3)
		`, row.GroceryID, row.RecipeID, row.Quantity)
	}

	if err := tx.SendBatch(ctx, batch).Close(); err != nil {
		if db.IsForeignKeyViolation(err) {
			return ErrUnknownRecipe
		}
		return fmt.Errorf("insert grocery lines: %w", err)
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) DeleteLine(ctx context.Context, groceryID string, lineID int64) error {
	cmd, err := r.db.Exec(ctx, `
		DELETE FROM grocery_recipes
		WHERE id = $1 AND grocery_id = $2
	`, lineID, groceryID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrLineNotFound
	}
	return nil
}

// Clear empties the grocery: lines and checked state go together.
func (r *PostgresRepository) Clear(ctx context.Context, groceryID string) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `DELETE FROM grocery_recipes WHERE grocery_id = $1`, groceryID); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM grocery_ingredients WHERE grocery_id = $1`, groceryID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PostgresRepository) Multipliers(ctx context.Context, groceryID string) ([]buying.GroceryRecipe, error) {
	rows, err := r.db.Query(ctx, `
		SELECT recipe_id, SUM(quantity)
		FROM grocery_recipes
		WHERE grocery_id = $1
		GROUP BY recipe_id
	`, groceryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []buying.GroceryRecipe{}
	for rows.Next() {
		var gr buying.GroceryRecipe
		if err := rows.Scan(&gr.RecipeID, &gr.Quantity); err != nil {
			return nil, err
		}
		out = append(out, gr)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) CheckedState(ctx context.Context, groceryID string) (map[string]bool, error) {
	rows, err := r.db.Query(ctx, `
		SELECT ingredient_id, checked
		FROM grocery_ingredients
		WHERE grocery_id = $1
	`, groceryID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	checked := make(map[string]bool)
	for rows.Next() {
		var id string
		var c bool
		if err := rows.Scan(&id, &c); err != nil {
			return nil, err
		}
		checked[id] = c
	}
	return checked, rows.Err()
}

// SetChecked upserts the checked flag keyed by (grocery, ingredient).
func (r *PostgresRepository) SetChecked(ctx context.Context, groceryID, ingredientID string, checked bool) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO grocery_ingredients (grocery_id, ingredient_id, checked)
		VALUES ($1, $2, $3)
		ON CONFLICT (grocery_id, ingredient_id)
		DO UPDATE SET
			checked = EXCLUDED.checked,
			updated_at = now()
	`, groceryID, ingredientID, checked)

	if db.IsForeignKeyViolation(err) {
		return ErrUnknownIngredient
	}
	return err
}
