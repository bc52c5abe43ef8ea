package normalize

import (
	"strconv"
	"testing"

	"studentsignal/pkg/models"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		input    string
		wantMin  *int64
		wantMax  *int64
		wantKind models.AmountKind
	}{
		{"Up to $2,500", int64Ptr(0), int64Ptr(2500), models.AmountRange},
		{"up to 1000 dollars", int64Ptr(0), int64Ptr(1000), models.AmountRange},
		{"$20,000", int64Ptr(20000), int64Ptr(20000), models.AmountFixed},
		{"$7,500.75", int64Ptr(7500), int64Ptr(7500), models.AmountFixed},
		{"Full Cost of Attendance", nil, nil, models.AmountFullRide},
		{"Full tuition plus $5,000 stipend", nil, nil, models.AmountFullRide},
		{"Amount varies", nil, nil, models.AmountFullRide},
		{"FULL RIDE", nil, nil, models.AmountFullRide},
		{"$5,000-$10,000", int64Ptr(5000), int64Ptr(10000), models.AmountRange},
		{"$10,000 to $5,000", int64Ptr(5000), int64Ptr(10000), models.AmountRange},
		{"5000 - 10000", int64Ptr(5000), int64Ptr(10000), models.AmountRange},
		{"$5,000-10,000", int64Ptr(5000), int64Ptr(10000), models.AmountRange},
		{"$5,000 to 10,000", int64Ptr(5000), int64Ptr(10000), models.AmountRange},
		{"$2,500 - 5000 per year", int64Ptr(2500), int64Ptr(5000), models.AmountRange},
		{"2026 award: $3,000", int64Ptr(2026), int64Ptr(3000), models.AmountRange},
		{"$1,000, $2,500 or $5,000", int64Ptr(1000), int64Ptr(5000), models.AmountRange},
		{"2026: 3 awards of $1,000 to $4,000", int64Ptr(1000), int64Ptr(4000), models.AmountRange},
		{"2026: 3 awards of $500", int64Ptr(500), int64Ptr(500), models.AmountFixed},
		{"1, 2 or 3 thousand", int64Ptr(1), int64Ptr(3), models.AmountRange},
		{"Generous", nil, nil, models.AmountUnknown},
		{"", nil, nil, models.AmountUnknown},
		{"   ", nil, nil, models.AmountUnknown},
	}

	for _, tt := range tests {
		got := ParseAmount(tt.input)
		if got.Kind != tt.wantKind {
			t.Errorf("ParseAmount(%q).Kind = %q, want %q", tt.input, got.Kind, tt.wantKind)
		}
		if !equalPtr(got.Min, tt.wantMin) {
			t.Errorf("ParseAmount(%q).Min = %s, want %s", tt.input, fmtPtr(got.Min), fmtPtr(tt.wantMin))
		}
		if !equalPtr(got.Max, tt.wantMax) {
			t.Errorf("ParseAmount(%q).Max = %s, want %s", tt.input, fmtPtr(got.Max), fmtPtr(tt.wantMax))
		}
	}
}

func TestParseAmountInvariants(t *testing.T) {
	inputs := []string{
		"Up to $2,500", "$20,000", "Full Cost of Attendance", "$5,000-$10,000",
		"Generous", "", "3 awards of $500", "varies by year", "1,234,567",
	}
	for _, in := range inputs {
		got := ParseAmount(in)
		switch got.Kind {
		case models.AmountFixed:
			if got.Min == nil || got.Max == nil || *got.Min != *got.Max {
				t.Errorf("%q: fixed amount must have min == max, got %s..%s", in, fmtPtr(got.Min), fmtPtr(got.Max))
			}
		case models.AmountFullRide, models.AmountUnknown:
			if got.Min != nil || got.Max != nil {
				t.Errorf("%q: %s amount must have nil bounds", in, got.Kind)
			}
		case models.AmountRange:
			if got.Min == nil || got.Max == nil || *got.Min > *got.Max {
				t.Errorf("%q: range must have min <= max, got %s..%s", in, fmtPtr(got.Min), fmtPtr(got.Max))
			}
		default:
			t.Errorf("%q: unexpected kind %q", in, got.Kind)
		}
	}
}

func TestParseAmountThousandsSeparators(t *testing.T) {
	got := ParseAmount("1,234,567")
	if got.Kind != models.AmountFixed || *got.Min != 1234567 {
		t.Fatalf("got %+v, want fixed 1234567", got)
	}
}

func equalPtr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func fmtPtr(p *int64) string {
	if p == nil {
		return "nil"
	}
	return strconv.FormatInt(*p, 10)
}
