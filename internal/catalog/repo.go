package catalog

import (
	"context"

	"studentsignal/pkg/models"
)

const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// ListQuery filters a catalog listing. Zero values mean "no filter".
type ListQuery struct {
	Search    string // case-insensitive substring of name or description
	Category  string
	Type      string
	Tag       string
	Renewable *bool
	Limit     int
	Offset    int
}

// Repo reads the collection the pipeline last wrote.
type Repo interface {
	// Get finds a scholarship by id or slug. It returns nil, nil when
	// nothing matches.
	Get(ctx context.Context, idOrSlug string) (*models.TransformedRecord, error)
	Count(ctx context.Context, q ListQuery) (int, error)
	List(ctx context.Context, q ListQuery) ([]models.TransformedRecord, error)
	Ping(ctx context.Context) error
}

func (q ListQuery) limit() int {
	if q.Limit <= 0 || q.Limit > MaxLimit {
		return DefaultLimit
	}
	return q.Limit
}

func (q ListQuery) offset() int {
	if q.Offset < 0 {
		return 0
	}
	return q.Offset
}
