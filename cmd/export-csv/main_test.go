package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"studentsignal/internal/catalog"
	"studentsignal/internal/pipeline"
	"studentsignal/internal/store"
	"studentsignal/pkg/database"
	"studentsignal/pkg/models"
)

func TestExportCatalog(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	// more than one page
	src := make([]models.SourceRecord, catalog.MaxLimit+5)
	for i := range src {
		src[i] = models.SourceRecord{
			Name:     fmt.Sprintf("Award %03d", i),
			Amount:   "$1,000",
			Deadline: "March 1, 2026",
			Type:     "Merit-Based",
			Category: "General Studies",
		}
	}
	recs, err := pipeline.Transform(src, nil, time.UTC, pipeline.NewStamp("test"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.NewSQLiteWriter(db, nil).Replace(ctx, "scholarships_ui", recs); err != nil {
		t.Fatal(err)
	}
	repo, err := catalog.NewSQLiteRepo(db, "scholarships_ui")
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	n, err := exportCatalog(ctx, repo, &buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != len(src) {
		t.Errorf("exported %d, want %d", n, len(src))
	}

	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(src)+1 {
		t.Fatalf("rows = %d", len(rows))
	}
	first := rows[1]
	if first[1] != "award-000" || first[4] != "1000" || first[6] != "fixed" {
		t.Errorf("first row = %v", first)
	}
	if first[7] != "2026-03-01T23:59:59.999Z" || first[12] != "merit-based;general;studies" {
		t.Errorf("deadline/tags = %q %q", first[7], first[12])
	}
	if first[15] != "" {
		t.Errorf("website should be empty, got %q", first[15])
	}
}
