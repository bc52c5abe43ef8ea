package pipeline

import (
	"time"

	"github.com/google/uuid"

	"studentsignal/internal/normalize"
	"studentsignal/pkg/models"
)

// Stamp carries the per-run values every assembled record shares.
type Stamp struct {
	Now    time.Time
	NewID  func() string // used when the source record has no id
	Source string        // loader name, stored as sourceCollection
}

// NewStamp returns a stamp for a run starting now, minting UUIDv4 ids.
func NewStamp(source string) Stamp {
	return Stamp{Now: time.Now().UTC(), NewID: uuid.NewString, Source: source}
}

// Assemble merges one source record with its derived fields and its
// enrichment (zero value when the slug has none) into the catalog shape.
// It has no side effects.
func Assemble(
	src models.SourceRecord,
	amount models.ParsedAmount,
	deadline *time.Time,
	slug string,
	tags []string,
	enr models.EnrichmentRecord,
	stamp Stamp,
) models.TransformedRecord {
	id := src.ID
	if id == "" {
		newID := stamp.NewID
		if newID == nil {
			newID = uuid.NewString
		}
		id = newID()
	}
	if tags == nil {
		tags = []string{}
	}
	eligibility := append([]string{}, src.Eligibility...)

	return models.TransformedRecord{
		ID:   id,
		Slug: slug,
		Name: src.Name,

		Amount:     src.Amount,
		AmountMin:  amount.Min,
		AmountMax:  amount.Max,
		AmountType: amount.Kind,

		Deadline:        deadline,
		DeadlineDisplay: src.Deadline,
		IsRolling:       deadline == nil && normalize.IsRolling(src.Deadline),

		Type:     src.Type,
		Category: src.Category,
		Tags:     tags,

		Description: src.Description,
		Eligibility: eligibility,

		Renewable:           src.Renewable,
		ApplicationRequired: src.ApplicationRequired,
		Website:             copyString(enr.Website),
		ApplicationURL:      copyString(enr.ApplicationURL),

		Sponsor:        copyString(enr.Sponsor),
		SponsorWebsite: copyString(enr.Website),

		ImageURL: src.ImageURL,
		IsActive: true,
		Featured: false,

		CreatedAt: stamp.Now,
		UpdatedAt: stamp.Now,

		SourceCollection: stamp.Source,
	}
}

func copyString(p *string) *string {
	if p == nil {
		return nil
	}
	s := *p
	return &s
}
