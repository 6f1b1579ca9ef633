package db

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestPgErrorClassification(t *testing.T) {
	unique := fmt.Errorf("insert grocery: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	if !IsUniqueViolation(unique) {
		t.Errorf("expected wrapped 23505 to be a unique violation")
	}
	if IsUniqueViolation(fk) {
		t.Errorf("23503 is not a unique violation")
	}
	if !IsForeignKeyViolation(fk) {
		t.Errorf("expected 23503 to be a foreign key violation")
	}
	if IsUniqueViolation(errors.New("duplicate")) || IsUniqueViolation(nil) {
		t.Errorf("plain errors must not match")
	}
}

// TestConnectPostgres only runs against a real database.
func TestConnectPostgres(t *testing.T) {
	if os.Getenv("DATABASE_URL") == "" {
		t.Skip("DATABASE_URL not set, skipping integration test")
	}

	pool := ConnectPostgres()
	defer pool.Close()
}
