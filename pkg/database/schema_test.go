package database

import (
	"context"
	"path/filepath"
	"testing"
)

func TestValidateTableName(t *testing.T) {
	for _, ok := range []string{"scholarships_ui", "_x", "T1"} {
		if err := ValidateTableName(ok); err != nil {
			t.Errorf("ValidateTableName(%q) = %v", ok, err)
		}
	}
	for _, bad := range []string{"", "1abc", "drop table;", "a-b", "a.b", `x"y`} {
		if err := ValidateTableName(bad); err == nil {
			t.Errorf("ValidateTableName(%q) = nil, want error", bad)
		}
	}
}

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	db, err := Open(filepath.Join(t.TempDir(), "data", "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	exists, err := TableExists(ctx, db, "scholarships_ui")
	if err != nil || exists {
		t.Fatalf("TableExists before migrate = %v, %v", exists, err)
	}

	for i := 0; i < 2; i++ {
		if err := Migrate(ctx, db, "scholarships_ui"); err != nil {
			t.Fatalf("Migrate #%d: %v", i+1, err)
		}
	}

	exists, err = TableExists(ctx, db, "scholarships_ui")
	if err != nil || !exists {
		t.Fatalf("TableExists after migrate = %v, %v", exists, err)
	}

	var n int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM scholarships_ui`).Scan(&n); err != nil || n != 0 {
		t.Errorf("count = %d, %v", n, err)
	}
}

func TestMigrateRejectsBadName(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer db.Close()

	if err := Migrate(context.Background(), db, "bad name"); err == nil {
		t.Error("expected error for bad table name")
	}
}
