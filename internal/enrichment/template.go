package enrichment

import (
	"studentsignal/internal/normalize"
	"studentsignal/pkg/models"
)

// Template builds an enrichment skeleton for records, one entry per record
// in order, keyed with the same slug function the pipeline joins on.
// Values already curated in existing are carried over; everything else is
// left as "" for an editor to fill in.
func Template(records []models.SourceRecord, existing Map) File {
	f := File{Scholarships: make([]Entry, 0, len(records))}
	for _, r := range records {
		slug := normalize.Slugify(r.Name)
		cur := existing[slug]
		f.Scholarships = append(f.Scholarships, Entry{
			Slug: slug,
			Name: r.Name,
			EnrichmentData: &models.EnrichmentRecord{
				Sponsor:        orEmpty(cur.Sponsor),
				Website:        orEmpty(cur.Website),
				ApplicationURL: orEmpty(cur.ApplicationURL),
			},
		})
	}
	return f
}

func orEmpty(p *string) *string {
	if p != nil {
		v := *p
		return &v
	}
	empty := ""
	return &empty
}
