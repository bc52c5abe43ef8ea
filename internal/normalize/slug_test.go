package normalize

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Women in Technology Scholarship", "women-in-technology-scholarship"},
		{"Coca-Cola Scholars Program", "coca-cola-scholars-program"},
		{"  STEM Excellence Scholarship  ", "stem-excellence-scholarship"},
		{"A & B -- Award!", "a-b-award"},
		{"Dean's List (2025)", "deans-list-2025"},
		{"--leading and trailing--", "leading-and-trailing"},
		{"snake_case_name", "snakecasename"},
		{"tabs\tand\nnewlines", "tabs-and-newlines"},
		{"Café Award", "caf-award"},
		{"", ""},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Slugify(tt.input); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	inputs := []string{
		"National Merit Scholarship",
		"  Up -- Down  ",
		"First Generation College Scholarship",
		"100+ volunteer hours",
		"Ünïcödé  names",
		"-",
	}
	for _, in := range inputs {
		once := Slugify(in)
		if twice := Slugify(once); twice != once {
			t.Errorf("Slugify not idempotent for %q: %q then %q", in, once, twice)
		}
		if again := Slugify(in); again != once {
			t.Errorf("Slugify not deterministic for %q: %q vs %q", in, once, again)
		}
	}
}
