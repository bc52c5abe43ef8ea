package enrichment

import (
	"fmt"
	"io"
	"regexp"
	"strings"
)

// Field names as they appear in the file.
const (
	FieldSponsor        = "sponsor"
	FieldWebsite        = "website"
	FieldApplicationURL = "applicationUrl"
)

var requiredFields = []string{FieldSponsor, FieldWebsite, FieldApplicationURL}

type rule struct {
	minLen, maxLen int
	pattern        *regexp.Regexp
	message        string
}

var (
	httpsURL = regexp.MustCompile(`^https://.+\..+`)

	rules = map[string]rule{
		FieldSponsor: {
			minLen:  5,
			maxLen:  100,
			pattern: regexp.MustCompile(`^[a-zA-Z0-9\s&.,'-]+$`),
			message: "sponsor must be 5-100 characters, alphanumeric with basic punctuation",
		},
		FieldWebsite:        {pattern: httpsURL, message: "website must be a valid HTTPS URL"},
		FieldApplicationURL: {pattern: httpsURL, message: "application URL must be a valid HTTPS URL"},
	}
)

// Issue is one validation failure.
type Issue struct {
	Scholarship string
	Field       string
	Message     string
	Value       string
}

// EntryResult is the outcome for one enrichment entry.
type EntryResult struct {
	Name     string
	Slug     string
	Values   map[string]string // field -> trimmed value, "" when empty
	Issues   []Issue
	Complete bool // every field filled and valid
}

// Report summarises a whole enrichment file.
type Report struct {
	Entries      []EntryResult
	Completed    int
	FilledFields int
	TotalFields  int
}

// Passed reports whether every entry is complete and valid.
func (r Report) Passed() bool {
	return r.Completed == len(r.Entries) && len(r.Issues()) == 0
}

// Issues flattens the per-entry issues in file order.
func (r Report) Issues() []Issue {
	var out []Issue
	for _, e := range r.Entries {
		out = append(out, e.Issues...)
	}
	return out
}

// Validate checks every entry of f against the curation rules: all three
// fields present, a plausible sponsor name and HTTPS URLs.
func Validate(f File) Report {
	rep := Report{TotalFields: len(f.Scholarships) * len(requiredFields)}

	for i, e := range f.Scholarships {
		name := e.Name
		if name == "" {
			name = fmt.Sprintf("Scholarship #%d", i+1)
		}
		slug := e.Slug
		if slug == "" {
			slug = "unknown"
		}
		res := EntryResult{Name: name, Slug: slug, Values: map[string]string{}}

		data := e.Data()
		if data == nil {
			res.Issues = append(res.Issues, Issue{Scholarship: name, Field: "enrichmentData", Message: "section missing"})
			rep.Entries = append(rep.Entries, res)
			continue
		}

		values := map[string]*string{
			FieldSponsor:        data.Sponsor,
			FieldWebsite:        data.Website,
			FieldApplicationURL: data.ApplicationURL,
		}
		complete := true
		for _, field := range requiredFields {
			v := ""
			if p := values[field]; p != nil {
				v = strings.TrimSpace(*p)
			}
			res.Values[field] = v
			if v != "" {
				rep.FilledFields++
			}
			issues := checkField(name, field, v)
			if len(issues) > 0 {
				complete = false
			}
			res.Issues = append(res.Issues, issues...)
		}
		res.Complete = complete
		if complete {
			rep.Completed++
		}
		rep.Entries = append(rep.Entries, res)
	}
	return rep
}

func checkField(scholarship, field, value string) []Issue {
	if value == "" {
		return []Issue{{Scholarship: scholarship, Field: field, Message: "field is empty"}}
	}
	r := rules[field]
	var issues []Issue
	n := len([]rune(value))
	if r.minLen > 0 && n < r.minLen {
		issues = append(issues, Issue{scholarship, field, fmt.Sprintf("too short (%d chars, minimum %d)", n, r.minLen), value})
	}
	if r.maxLen > 0 && n > r.maxLen {
		issues = append(issues, Issue{scholarship, field, fmt.Sprintf("too long (%d chars, maximum %d)", n, r.maxLen), value})
	}
	if r.pattern != nil && !r.pattern.MatchString(value) {
		issues = append(issues, Issue{scholarship, field, r.message, value})
	}
	return issues
}

// Print writes a per-entry listing followed by a summary.
func (r Report) Print(w io.Writer) {
	line := strings.Repeat("=", 80)

	fmt.Fprintln(w, line)
	fmt.Fprintln(w, "ENRICHMENT VALIDATION")
	fmt.Fprintln(w, line)
	for i, e := range r.Entries {
		fmt.Fprintf(w, "\n%d. %s\n   slug: %s\n", i+1, e.Name, e.Slug)
		if len(e.Values) == 0 {
			fmt.Fprintln(w, "   x enrichmentData section missing")
			continue
		}
		for _, field := range requiredFields {
			v := e.Values[field]
			switch {
			case v == "":
				fmt.Fprintf(w, "   x %s: EMPTY\n", field)
			case hasIssue(e.Issues, field):
				fmt.Fprintf(w, "   ! %s: %q\n", field, v)
			default:
				fmt.Fprintf(w, "   ok %s: %q\n", field, v)
			}
		}
	}

	total := len(r.Entries)
	pct := 0
	if r.TotalFields > 0 {
		pct = r.FilledFields * 100 / r.TotalFields
	}
	issues := r.Issues()

	fmt.Fprintf(w, "\n%s\nSUMMARY\n%s\n", line, line)
	fmt.Fprintf(w, "Total scholarships:  %d\n", total)
	fmt.Fprintf(w, "Fully completed:     %d/%d\n", r.Completed, total)
	fmt.Fprintf(w, "Fields filled:       %d/%d\n", r.FilledFields, r.TotalFields)
	fmt.Fprintf(w, "Completion:          %d%%\n", pct)
	fmt.Fprintf(w, "Errors:              %d\n", len(issues))

	for _, is := range issues {
		fmt.Fprintf(w, "\n- %s\n  field: %s\n  error: %s\n", is.Scholarship, is.Field, is.Message)
		if is.Value != "" {
			fmt.Fprintf(w, "  value: %q\n", is.Value)
		}
	}

	fmt.Fprintln(w)
	if r.Passed() {
		fmt.Fprintln(w, "VALIDATION PASSED")
	} else {
		fmt.Fprintf(w, "VALIDATION FAILED: %d scholarship(s) need attention\n", total-r.Completed)
	}
}

func hasIssue(issues []Issue, field string) bool {
	for _, is := range issues {
		if is.Field == field {
			return true
		}
	}
	return false
}
