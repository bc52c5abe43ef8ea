package enrichment

import "sort"

// Reconciliation describes how well the enrichment keys line up with the
// slugs produced for the current source set.
type Reconciliation struct {
	Matched   int
	Unmatched []string // record slugs with no enrichment entry
	Orphaned  []string // enrichment slugs with no record, sorted
}

// Reconcile matches record slugs (in record order) against m. Orphaned
// entries usually mean a scholarship was renamed and its slug drifted.
func Reconcile(slugs []string, m Map) Reconciliation {
	var rec Reconciliation
	seen := make(map[string]struct{}, len(slugs))
	for _, s := range slugs {
		seen[s] = struct{}{}
		if _, ok := m[s]; ok {
			rec.Matched++
		} else {
			rec.Unmatched = append(rec.Unmatched, s)
		}
	}
	for s := range m {
		if _, ok := seen[s]; !ok {
			rec.Orphaned = append(rec.Orphaned, s)
		}
	}
	sort.Strings(rec.Orphaned)
	return rec
}
