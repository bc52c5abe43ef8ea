package enrichment

import (
	"bytes"
	"strings"
	"testing"

	"studentsignal/pkg/models"
)

func strPtr(s string) *string { return &s }

func TestValidatePassing(t *testing.T) {
	f := File{Scholarships: []Entry{{
		Slug: "gates-scholarship",
		Name: "Gates Scholarship",
		EnrichmentData: &models.EnrichmentRecord{
			Sponsor:        strPtr("Bill & Melinda Gates Foundation"),
			Website:        strPtr("https://www.thegatesscholarship.org"),
			ApplicationURL: strPtr("https://www.thegatesscholarship.org/apply"),
		},
	}}}

	rep := Validate(f)
	if !rep.Passed() {
		t.Fatalf("expected pass, issues: %+v", rep.Issues())
	}
	if rep.Completed != 1 || rep.FilledFields != 3 || rep.TotalFields != 3 {
		t.Errorf("counts = %+v", rep)
	}

	var buf bytes.Buffer
	rep.Print(&buf)
	if !strings.Contains(buf.String(), "VALIDATION PASSED") {
		t.Errorf("report output missing verdict:\n%s", buf.String())
	}
}

func TestValidateFailures(t *testing.T) {
	f := File{Scholarships: []Entry{
		{
			Slug: "a",
			Name: "Bad Values",
			EnrichmentData: &models.EnrichmentRecord{
				Sponsor:        strPtr("ACME"),                    // too short
				Website:        strPtr("http://insecure.example"), // not https
				ApplicationURL: strPtr("  "),                      // empty
			},
		},
		{Slug: "b"}, // no payload, unnamed
		{
			Slug: "c",
			Name: "Bad Sponsor Chars",
			LegacyData: &models.EnrichmentRecord{
				Sponsor:        strPtr("Sponsor <script>"),
				Website:        strPtr("https://ok.example"),
				ApplicationURL: strPtr("https://ok.example/apply"),
			},
		},
	}}

	rep := Validate(f)
	if rep.Passed() {
		t.Fatal("expected failure")
	}
	if rep.Completed != 0 {
		t.Errorf("Completed = %d, want 0", rep.Completed)
	}
	if rep.TotalFields != 9 || rep.FilledFields != 5 {
		t.Errorf("fields = %d/%d, want 5/9", rep.FilledFields, rep.TotalFields)
	}

	byField := map[string]int{}
	for _, is := range rep.Issues() {
		byField[is.Scholarship+"/"+is.Field]++
	}
	want := map[string]int{
		"Bad Values/sponsor":            1,
		"Bad Values/website":            1,
		"Bad Values/applicationUrl":     1,
		"Scholarship #2/enrichmentData": 1,
		"Bad Sponsor Chars/sponsor":     1,
	}
	for k, n := range want {
		if byField[k] != n {
			t.Errorf("issues for %s = %d, want %d (all: %v)", k, byField[k], n, byField)
		}
	}

	var buf bytes.Buffer
	rep.Print(&buf)
	out := buf.String()
	if !strings.Contains(out, "VALIDATION FAILED: 3 scholarship(s) need attention") {
		t.Errorf("unexpected verdict:\n%s", out)
	}
	if !strings.Contains(out, "applicationUrl: EMPTY") {
		t.Errorf("empty field not reported:\n%s", out)
	}
}

func TestValidateSponsorTooLong(t *testing.T) {
	long := strings.Repeat("a", 101)
	f := File{Scholarships: []Entry{{
		Slug: "x",
		Name: "X",
		EnrichmentData: &models.EnrichmentRecord{
			Sponsor:        &long,
			Website:        strPtr("https://x.example"),
			ApplicationURL: strPtr("https://x.example/apply"),
		},
	}}}
	issues := Validate(f).Issues()
	if len(issues) != 1 || !strings.HasPrefix(issues[0].Message, "too long") {
		t.Errorf("issues = %+v", issues)
	}
}
