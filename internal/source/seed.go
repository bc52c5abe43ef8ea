package source

import (
	"context"

	"studentsignal/pkg/models"
)

// Seed serves the hand-authored scholarship set the catalog launched with.
type Seed struct {
	records []models.SourceRecord
}

func NewSeed() *Seed {
	return &Seed{records: seedScholarships}
}

func (s *Seed) Name() string { return "seed" }

// Load returns a copy so callers cannot alter the built-in set.
func (s *Seed) Load(ctx context.Context) ([]models.SourceRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]models.SourceRecord, len(s.records))
	for i, r := range s.records {
		r.Eligibility = append([]string(nil), r.Eligibility...)
		out[i] = r
	}
	return out, nil
}

var seedScholarships = []models.SourceRecord{
	{
		Name:                "National Merit Scholarship",
		Amount:              "Up to $2,500",
		Deadline:            "October 15, 2025",
		Type:                "Merit-Based",
		Category:            "Academic Excellence",
		Description:         "Awarded to top-performing students based on PSAT/NMSQT scores.",
		Eligibility:         []string{"High school seniors", "U.S. citizens", "Top PSAT scores"},
		Renewable:           true,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1523240795612-9a054b0db644?w=800",
	},
	{
		Name:                "Coca-Cola Scholars Program",
		Amount:              "$20,000",
		Deadline:            "October 31, 2025",
		Type:                "Merit-Based",
		Category:            "Leadership",
		Description:         "Recognizes students who demonstrate leadership, service, and academic achievement.",
		Eligibility:         []string{"High school seniors", "Minimum 3.0 GPA", "Leadership experience"},
		Renewable:           false,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1427504494785-3a9ca7044f45?w=800",
	},
	{
		Name:                "Gates Scholarship",
		Amount:              "Full Cost of Attendance",
		Deadline:            "September 15, 2025",
		Type:                "Need-Based",
		Category:            "Minority Students",
		Description:         "Covers the full cost of attendance for exceptional minority students with financial need.",
		Eligibility:         []string{"High school seniors", "Pell Grant eligible", "Minority students"},
		Renewable:           true,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1498243691581-b145c3f54a5a?w=800",
	},
	{
		Name:                "STEM Excellence Scholarship",
		Amount:              "$5,000",
		Deadline:            "January 15, 2026",
		Type:                "Merit-Based",
		Category:            "STEM",
		Description:         "For students pursuing degrees in Science, Technology, Engineering, or Mathematics.",
		Eligibility:         []string{"College students", "STEM major", "Minimum 3.5 GPA"},
		Renewable:           true,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1451187580459-43490279c0fa?w=800",
	},
	{
		Name:                "First Generation College Scholarship",
		Amount:              "$10,000",
		Deadline:            "December 1, 2025",
		Type:                "Need-Based",
		Category:            "First Generation",
		Description:         "Supporting first-generation college students in their educational journey.",
		Eligibility:         []string{"First-generation college students", "Financial need", "Minimum 2.5 GPA"},
		Renewable:           true,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1517486808906-6ca8b3f04846?w=800",
	},
	{
		Name:                "Athletic Excellence Scholarship",
		Amount:              "$15,000",
		Deadline:            "November 30, 2025",
		Type:                "Athletic",
		Category:            "Sports",
		Description:         "For student-athletes demonstrating excellence in their sport and academics.",
		Eligibility:         []string{"High school seniors", "Varsity athlete", "Minimum 3.0 GPA"},
		Renewable:           true,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1579952363873-27f3bade9f55?w=800",
	},
	{
		Name:                "Women in Technology Scholarship",
		Amount:              "$7,500",
		Deadline:            "February 28, 2026",
		Type:                "Merit-Based",
		Category:            "Women in STEM",
		Description:         "Encouraging women to pursue careers in technology and computer science.",
		Eligibility:         []string{"Female students", "Technology or CS major", "Minimum 3.0 GPA"},
		Renewable:           false,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1531482615713-2afd69097998?w=800",
	},
	{
		Name:                "Community Service Leadership Award",
		Amount:              "$3,000",
		Deadline:            "March 31, 2026",
		Type:                "Merit-Based",
		Category:            "Community Service",
		Description:         "Recognizes students with outstanding community service contributions.",
		Eligibility:         []string{"College students", "100+ volunteer hours", "Leadership roles"},
		Renewable:           false,
		ApplicationRequired: true,
		ImageURL:            "https://images.unsplash.com/photo-1559027615-cd4628902d4a?w=800",
	},
}
