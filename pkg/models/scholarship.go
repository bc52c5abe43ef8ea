package models

import "time"

// SourceRecord is one scholarship as it was authored by hand.
// Loaders produce these; nothing downstream mutates them.
type SourceRecord struct {
	ID                  string   `json:"id,omitempty"`
	Name                string   `json:"name"`
	Amount              string   `json:"amount"`   // free text, e.g. "Up to $2,500"
	Deadline            string   `json:"deadline"` // free text, e.g. "October 15, 2025"
	Type                string   `json:"type"`
	Category            string   `json:"category"`
	Description         string   `json:"description"`
	Eligibility         []string `json:"eligibility"`
	Renewable           bool     `json:"renewable"`
	ApplicationRequired bool     `json:"applicationRequired"`
	ImageURL            string   `json:"imageUrl,omitempty"`
}

// EnrichmentRecord holds the manually curated fields for one slug.
// A nil field means "not curated yet".
type EnrichmentRecord struct {
	Sponsor        *string `json:"sponsor"`
	Website        *string `json:"website"`
	ApplicationURL *string `json:"applicationUrl"`
}

// TransformedRecord is the canonical, query-ready scholarship written to the
// catalog collection. Field names are the catalog UI contract.
type TransformedRecord struct {
	// identity
	ID   string `json:"id" bson:"id"`
	Slug string `json:"slug" bson:"slug"`
	Name string `json:"name" bson:"name"`

	// financial
	Amount     string     `json:"amount" bson:"amount"` // display text
	AmountMin  *int64     `json:"amountMin" bson:"amountMin"`
	AmountMax  *int64     `json:"amountMax" bson:"amountMax"`
	AmountType AmountKind `json:"amountType" bson:"amountType"`

	// deadlines
	Deadline        *time.Time `json:"deadline" bson:"deadline"`
	DeadlineDisplay string     `json:"deadlineDisplay" bson:"deadlineDisplay"`
	IsRolling       bool       `json:"isRolling" bson:"isRolling"`

	// categorization
	Type     string   `json:"type" bson:"type"`
	Category string   `json:"category" bson:"category"`
	Tags     []string `json:"tags" bson:"tags"`

	// content
	Description string   `json:"description" bson:"description"`
	Eligibility []string `json:"eligibility" bson:"eligibility"`

	// application
	Renewable           bool    `json:"renewable" bson:"renewable"`
	ApplicationRequired bool    `json:"applicationRequired" bson:"applicationRequired"`
	Website             *string `json:"website" bson:"website"`
	ApplicationURL      *string `json:"applicationUrl" bson:"applicationUrl"`

	// sponsor
	Sponsor        *string `json:"sponsor" bson:"sponsor"`
	SponsorWebsite *string `json:"sponsorWebsite" bson:"sponsorWebsite"`

	ImageURL string `json:"imageUrl" bson:"imageUrl"`
	IsActive bool   `json:"isActive" bson:"isActive"`
	Featured bool   `json:"featured" bson:"featured"`

	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	SourceCollection string `json:"sourceCollection" bson:"sourceCollection"`
}
