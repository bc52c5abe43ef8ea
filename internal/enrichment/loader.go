package enrichment

import (
	"errors"
	"io/fs"
	"os"

	"go.uber.org/zap"

	"studentsignal/pkg/models"
)

// Map is the slug -> enrichment lookup used by the record assembler.
type Map map[string]models.EnrichmentRecord

// Load builds the lookup from the file at path. It never fails the run: a
// missing or unreadable file is a warning, a malformed one an error-level
// log, and both yield an empty map so every record keeps null enrichment.
func Load(path string, logger *zap.Logger) Map {
	if logger == nil {
		logger = zap.NewNop()
	}
	log := logger.With(zap.String("path", path))

	b, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Warn("enrichment: file not found, sponsor/website fields will be null")
		return Map{}
	}
	if err != nil {
		log.Warn("enrichment: file unreadable, sponsor/website fields will be null", zap.Error(err))
		return Map{}
	}

	f, err := decode(b)
	if err != nil {
		log.Error("enrichment: malformed file ignored", zap.Error(err))
		return Map{}
	}

	m := make(Map, len(f.Scholarships))
	skipped := 0
	for _, e := range f.Scholarships {
		data := e.Data()
		if e.Slug == "" || data == nil {
			skipped++
			continue
		}
		if _, dup := m[e.Slug]; dup {
			log.Warn("enrichment: duplicate slug, last entry wins", zap.String("slug", e.Slug))
		}
		m[e.Slug] = clean(*data)
	}

	log.Info("enrichment: loaded", zap.Int("entries", len(m)), zap.Int("skipped", skipped))
	return m
}
