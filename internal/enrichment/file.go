package enrichment

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"studentsignal/pkg/models"
)

// ErrMalformed is returned when the file is valid JSON but has no
// "scholarships" array.
var ErrMalformed = eris.New("enrichment file has no scholarships array")

// File is the on-disk enrichment document:
//
//	{
//	  "scholarships": [
//	    {
//	      "slug": "gates-scholarship",
//	      "name": "Gates Scholarship",
//	      "enrichmentData": {
//	        "sponsor": "Bill & Melinda Gates Foundation",
//	        "website": "https://www.thegatesscholarship.org",
//	        "applicationUrl": "https://www.thegatesscholarship.org/apply"
//	      }
//	    }
//	  ]
//	}
//
// Older files spell the payload key "enrichment_data"; both are read.
type File struct {
	Scholarships []Entry `json:"scholarships"`
}

type Entry struct {
	Slug           string                   `json:"slug"`
	Name           string                   `json:"name,omitempty"`
	EnrichmentData *models.EnrichmentRecord `json:"enrichmentData,omitempty"`
	LegacyData     *models.EnrichmentRecord `json:"enrichment_data,omitempty"`
}

// Data returns the entry's payload, preferring the current key.
func (e Entry) Data() *models.EnrichmentRecord {
	if e.EnrichmentData != nil {
		return e.EnrichmentData
	}
	return e.LegacyData
}

// ReadFile reads and decodes an enrichment file, failing on a missing file,
// bad JSON or a missing scholarships array.
func ReadFile(path string) (File, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return File{}, eris.Wrapf(err, "read %s", path)
	}
	return decode(b)
}

func decode(b []byte) (File, error) {
	var raw struct {
		Scholarships *[]Entry `json:"scholarships"`
	}
	if err := json.Unmarshal(b, &raw); err != nil {
		return File{}, eris.Wrap(err, "decode enrichment json")
	}
	if raw.Scholarships == nil {
		return File{}, ErrMalformed
	}
	return File{Scholarships: *raw.Scholarships}, nil
}

// WriteFile writes f as indented JSON, creating parent directories.
func WriteFile(path string, f File) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return eris.Wrapf(err, "mkdir for %s", path)
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return eris.Wrap(err, "marshal enrichment file")
	}
	if err := os.WriteFile(path, append(b, '\n'), 0o644); err != nil {
		return eris.Wrapf(err, "write %s", path)
	}
	return nil
}

// clean turns blank strings into nil so "" in a half-filled file means
// "not curated".
func clean(r models.EnrichmentRecord) models.EnrichmentRecord {
	return models.EnrichmentRecord{
		Sponsor:        nonBlank(r.Sponsor),
		Website:        nonBlank(r.Website),
		ApplicationURL: nonBlank(r.ApplicationURL),
	}
}

func nonBlank(p *string) *string {
	if p == nil {
		return nil
	}
	v := strings.TrimSpace(*p)
	if v == "" {
		return nil
	}
	return &v
}
