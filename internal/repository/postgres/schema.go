package postgres

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

//go:embed schema.sql
var schemaSQL string

// Child tables, in the order they are written and cleared.
var childTables = []string{
	"educations",
	"job_experiences",
	"skills",
	"certifications",
	"languages",
	"projects",
	"references",
}

// table quotes a table name; "references" is a reserved word.
func table(name string) string {
	return pq.QuoteIdentifier(name)
}

// EnsureSchema creates the tables and indexes if they do not exist yet
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	// Exec without arguments runs the whole script in one simple-protocol round trip
	if _, err := db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
