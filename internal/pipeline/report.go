package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"studentsignal/pkg/models"
)

// RunStatistics summarizes one assembled record set. It is diagnostic
// output only.
type RunStatistics struct {
	Total int

	Fixed    int
	Range    int
	FullRide int
	Unknown  int

	DeadlinesParsed int
	Rolling         int

	WithSlug      int
	WithAmountMin int
	WithAmountMax int
	WithTags      int

	MissingWebsite        int
	MissingSponsor        int
	MissingApplicationURL int
	Enriched              int // records with at least one curated field
}

func ComputeStatistics(records []models.TransformedRecord) RunStatistics {
	s := RunStatistics{Total: len(records)}
	for _, r := range records {
		switch r.AmountType {
		case models.AmountFixed:
			s.Fixed++
		case models.AmountRange:
			s.Range++
		case models.AmountFullRide:
			s.FullRide++
		default:
			s.Unknown++
		}

		if r.Deadline != nil {
			s.DeadlinesParsed++
		}
		if r.IsRolling {
			s.Rolling++
		}

		if r.Slug != "" {
			s.WithSlug++
		}
		if r.AmountMin != nil {
			s.WithAmountMin++
		}
		if r.AmountMax != nil {
			s.WithAmountMax++
		}
		if len(r.Tags) > 0 {
			s.WithTags++
		}

		if r.Website == nil {
			s.MissingWebsite++
		}
		if r.Sponsor == nil {
			s.MissingSponsor++
		}
		if r.ApplicationURL == nil {
			s.MissingApplicationURL++
		}
		if r.Website != nil || r.Sponsor != nil || r.ApplicationURL != nil {
			s.Enriched++
		}
	}
	return s
}

func (s RunStatistics) Print(w io.Writer) {
	rule := strings.Repeat("=", 80)
	frac := func(n int) string { return fmt.Sprintf("%d/%d", n, s.Total) }

	fmt.Fprintln(w, rule)
	fmt.Fprintln(w, "TRANSFORMATION STATISTICS")
	fmt.Fprintln(w, rule)

	fmt.Fprintln(w, "\nAmount types:")
	fmt.Fprintf(w, "  fixed:      %d\n", s.Fixed)
	fmt.Fprintf(w, "  range:      %d\n", s.Range)
	fmt.Fprintf(w, "  full-ride:  %d\n", s.FullRide)
	fmt.Fprintf(w, "  unknown:    %d\n", s.Unknown)

	fmt.Fprintln(w, "\nDeadlines:")
	fmt.Fprintf(w, "  parsed:     %s\n", frac(s.DeadlinesParsed))
	fmt.Fprintf(w, "  rolling:    %d\n", s.Rolling)

	fmt.Fprintln(w, "\nField completeness:")
	fmt.Fprintf(w, "  slug:       %s\n", frac(s.WithSlug))
	fmt.Fprintf(w, "  amountMin:  %s\n", frac(s.WithAmountMin))
	fmt.Fprintf(w, "  amountMax:  %s\n", frac(s.WithAmountMax))
	fmt.Fprintf(w, "  tags:       %s\n", frac(s.WithTags))

	fmt.Fprintln(w, "\nManual enrichment needed:")
	fmt.Fprintf(w, "  website:        %s\n", frac(s.MissingWebsite))
	fmt.Fprintf(w, "  sponsor:        %s\n", frac(s.MissingSponsor))
	fmt.Fprintf(w, "  applicationUrl: %s\n", frac(s.MissingApplicationURL))
	fmt.Fprintf(w, "  enriched:       %s\n", frac(s.Enriched))
}

// PrintSample writes the first source record next to its assembled form.
func PrintSample(w io.Writer, res RunResult) error {
	if len(res.Sources) == 0 || len(res.Records) == 0 {
		return nil
	}
	before, err := json.MarshalIndent(res.Sources[0], "", "  ")
	if err != nil {
		return err
	}
	after, err := json.MarshalIndent(res.Records[0], "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "--- before (source) ---\n%s\n--- after (transformed) ---\n%s\n", before, after)
	return nil
}
