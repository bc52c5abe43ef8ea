package database

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
)

var tableName = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateTableName rejects names that cannot be used unquoted in DDL.
// Table names are interpolated into statements, so this is the only guard.
func ValidateTableName(name string) error {
	if !tableName.MatchString(name) {
		return fmt.Errorf("invalid table name %q", name)
	}
	return nil
}

// Execer is satisfied by *sql.DB and *sql.Tx.
type Execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Columns of a scholarship catalog table, in insert order.
const ScholarshipColumns = `id, slug, name, amount, amount_min, amount_max, amount_type,
	deadline, deadline_display, is_rolling, type, category, tags,
	description, eligibility, renewable, application_required, website, application_url,
	sponsor, sponsor_website, image_url, is_active, featured,
	created_at, updated_at, source_collection`

// CreateScholarshipTable creates an empty catalog table.
// tags and eligibility hold JSON arrays as text; deadline and the
// timestamps hold ISO-8601 text.
func CreateScholarshipTable(ctx context.Context, db Execer, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	_, err := db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE %s (
		  id TEXT PRIMARY KEY,
		  slug TEXT NOT NULL UNIQUE,
		  name TEXT NOT NULL,
		  amount TEXT,
		  amount_min INTEGER,
		  amount_max INTEGER,
		  amount_type TEXT NOT NULL,
		  deadline TEXT,
		  deadline_display TEXT,
		  is_rolling INTEGER NOT NULL DEFAULT 0,
		  type TEXT,
		  category TEXT,
		  tags TEXT NOT NULL DEFAULT '[]',
		  description TEXT,
		  eligibility TEXT NOT NULL DEFAULT '[]',
		  renewable INTEGER NOT NULL DEFAULT 0,
		  application_required INTEGER NOT NULL DEFAULT 0,
		  website TEXT,
		  application_url TEXT,
		  sponsor TEXT,
		  sponsor_website TEXT,
		  image_url TEXT,
		  is_active INTEGER NOT NULL DEFAULT 1,
		  featured INTEGER NOT NULL DEFAULT 0,
		  created_at TEXT NOT NULL,
		  updated_at TEXT NOT NULL,
		  source_collection TEXT
		)
	`, table))
	if err != nil {
		return fmt.Errorf("create table %s: %w", table, err)
	}
	return nil
}

// CreateScholarshipIndexes adds the catalog's lookup indexes to table.
func CreateScholarshipIndexes(ctx context.Context, db Execer, table string) error {
	if err := ValidateTableName(table); err != nil {
		return err
	}
	for _, col := range []string{"type", "category", "name"} {
		stmt := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS idx_%s_%s ON %s (%s)`, table, col, table, col)
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index on %s.%s: %w", table, col, err)
		}
	}
	return nil
}

// Querier is satisfied by *sql.DB and *sql.Tx.
type Querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TableExists reports whether table is present.
func TableExists(ctx context.Context, db Querier, table string) (bool, error) {
	var n int
	err := db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = ?`, table,
	).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("check table %s: %w", table, err)
	}
	return n > 0, nil
}

// Migrate makes sure the catalog table exists so readers work before the
// first pipeline run.
func Migrate(ctx context.Context, db *sql.DB, table string) error {
	exists, err := TableExists(ctx, db, table)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := CreateScholarshipTable(ctx, db, table); err != nil {
		return err
	}
	return CreateScholarshipIndexes(ctx, db, table)
}
