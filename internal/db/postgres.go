package db

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres error codes the services react to.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

func ConnectPostgres() *pgxpool.Pool {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL not set")
	}

	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal(err)
	}

	config.MaxConns = 10
	config.MinConns = 2
	config.MaxConnLifetime = time.Hour

	db, err := pgxpool.NewWithConfig(context.Background(), config)
	if err != nil {
		log.Fatal(err)
	}

	if err := db.Ping(context.Background()); err != nil {
		log.Fatal("Postgres connection failed:", err)
	}

	log.Println("[DB] connected to PostgreSQL")

	if err := InitSchema(context.Background(), db); err != nil {
		log.Fatal("Failed to initialize schema:", err)
	}

	return db
}

// IsUniqueViolation reports whether err comes from a UNIQUE constraint.
func IsUniqueViolation(err error) bool {
	return hasCode(err, codeUniqueViolation)
}

// IsForeignKeyViolation reports whether err references a missing row.
func IsForeignKeyViolation(err error) bool {
	return hasCode(err, codeForeignKeyViolation)
}

func hasCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}

// InitSchema creates or updates the database schema. Every statement is
// idempotent so it runs on each start.
func InitSchema(ctx context.Context, db *pgxpool.Pool) error {
	for _, stmt := range schema {
		if _, err := db.Exec(ctx, stmt.sql); err != nil {
			log.Printf("[DB] schema step %q failed: %v", stmt.name, err)
			return err
		}
	}

	log.Println("[DB] schema initialized")
	return nil
}

var schema = []struct {
	name string
	sql  string
}{
	{"users", `
		CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY,
			username VARCHAR(120) NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			password VARCHAR(255) NOT NULL,
			role VARCHAR(50) NOT NULL DEFAULT 'USER',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"zones", `
		CREATE TABLE IF NOT EXISTS zones (
			id UUID PRIMARY KEY,
			name VARCHAR(120) UNIQUE NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"ingredients", `
		CREATE TABLE IF NOT EXISTS ingredients (
			id UUID PRIMARY KEY,
			name VARCHAR(120) UNIQUE NOT NULL,
			unit VARCHAR(30) NULL,
			zone_id UUID NULL REFERENCES zones(id) ON DELETE SET NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"recipes", `
		CREATE TABLE IF NOT EXISTS recipes (
			id UUID PRIMARY KEY,
			name VARCHAR(160) NOT NULL,
			created_by UUID NULL REFERENCES users(id) ON DELETE SET NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	// no UNIQUE(recipe_id, ingredient_id): a recipe may list an ingredient twice
	{"recipe_ingredients", `
		CREATE TABLE IF NOT EXISTS recipe_ingredients (
			id BIGSERIAL PRIMARY KEY,
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			ingredient_id UUID NOT NULL REFERENCES ingredients(id) ON DELETE CASCADE,
			quantity DOUBLE PRECISION NOT NULL,
			optional BOOLEAN NOT NULL DEFAULT FALSE
		)
	`},
	{"groceries", `
		CREATE TABLE IF NOT EXISTS groceries (
			id UUID PRIMARY KEY,
			user_id UUID UNIQUE NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"grocery_recipes", `
		CREATE TABLE IF NOT EXISTS grocery_recipes (
			id BIGSERIAL PRIMARY KEY,
			grocery_id UUID NOT NULL REFERENCES groceries(id) ON DELETE CASCADE,
			recipe_id UUID NOT NULL REFERENCES recipes(id) ON DELETE CASCADE,
			quantity DOUBLE PRECISION NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
	{"grocery_ingredients", `
		CREATE TABLE IF NOT EXISTS grocery_ingredients (
			grocery_id UUID NOT NULL REFERENCES groceries(id) ON DELETE CASCADE,
			ingredient_id UUID NOT NULL REFERENCES ingredients(id) ON DELETE CASCADE,
			checked BOOLEAN NOT NULL DEFAULT FALSE,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (grocery_id, ingredient_id)
		)
	`},
	{"app_config", `
		CREATE TABLE IF NOT EXISTS app_config (
			name VARCHAR(120) PRIMARY KEY,
			value TEXT NOT NULL
		)
	`},
	{"buying_exports", `
		CREATE TABLE IF NOT EXISTS buying_exports (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL REFERENCES users(id) ON DELETE CASCADE,
			status VARCHAR(20) NOT NULL DEFAULT 'PENDING',
			url VARCHAR(500) NULL,
			error TEXT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)
	`},
}
