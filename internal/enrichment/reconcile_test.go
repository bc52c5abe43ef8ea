package enrichment

import (
	"reflect"
	"testing"

	"studentsignal/pkg/models"
)

func TestReconcile(t *testing.T) {
	m := Map{
		"gates-scholarship":           models.EnrichmentRecord{},
		"old-renamed-award":           models.EnrichmentRecord{},
		"another-orphan":              models.EnrichmentRecord{},
		"stem-excellence-scholarship": models.EnrichmentRecord{},
	}
	slugs := []string{"gates-scholarship", "coca-cola-scholars-program", "stem-excellence-scholarship", "athletic-excellence-scholarship"}

	rec := Reconcile(slugs, m)
	if rec.Matched != 2 {
		t.Errorf("Matched = %d, want 2", rec.Matched)
	}
	if want := []string{"coca-cola-scholars-program", "athletic-excellence-scholarship"}; !reflect.DeepEqual(rec.Unmatched, want) {
		t.Errorf("Unmatched = %v, want %v", rec.Unmatched, want)
	}
	if want := []string{"another-orphan", "old-renamed-award"}; !reflect.DeepEqual(rec.Orphaned, want) {
		t.Errorf("Orphaned = %v, want %v", rec.Orphaned, want)
	}
}

func TestReconcileEmptyMap(t *testing.T) {
	rec := Reconcile([]string{"a", "b"}, Map{})
	if rec.Matched != 0 || len(rec.Unmatched) != 2 || len(rec.Orphaned) != 0 {
		t.Errorf("unexpected %+v", rec)
	}
}
