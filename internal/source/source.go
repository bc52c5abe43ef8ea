package source

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"

	"studentsignal/pkg/models"
)

// Loader yields the ordered scholarship records for one pipeline run.
// Implementations read their whole input up front; a run never sees a
// partially loaded set.
type Loader interface {
	Name() string
	Load(ctx context.Context) ([]models.SourceRecord, error)
}

// ErrUnsupportedFormat is returned by FromPath for unknown file extensions.
var ErrUnsupportedFormat = eris.New("unsupported source format")

// FromPath picks a Loader for path: the built-in seed set when path is
// empty, otherwise a CSV or JSON file loader by extension.
func FromPath(path string) (Loader, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return NewSeed(), nil
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return NewCSVFile(path), nil
	case ".json":
		return NewJSONFile(path), nil
	default:
		return nil, eris.Wrapf(ErrUnsupportedFormat, "source %s", path)
	}
}
