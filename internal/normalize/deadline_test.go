package normalize

import (
	"testing"
	"time"
)

func TestParseDeadline(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"October 15, 2025", "2025-10-15T23:59:59.999Z"},
		{"  January 15, 2026 ", "2026-01-15T23:59:59.999Z"},
		{"2026-02-28", "2026-02-28T23:59:59.999Z"},
		{"03/31/2026", "2026-03-31T23:59:59.999Z"},
	}

	for _, tt := range tests {
		got := ParseDeadline(tt.input, time.UTC)
		if got == nil {
			t.Errorf("ParseDeadline(%q) = nil, want %s", tt.input, tt.want)
			continue
		}
		if s := FormatDeadline(got); s != tt.want {
			t.Errorf("ParseDeadline(%q) = %s, want %s", tt.input, s, tt.want)
		}
	}
}

func TestParseDeadlineEndOfDay(t *testing.T) {
	for _, in := range []string{"October 15, 2025", "December 1, 2025", "2026-03-31"} {
		got := ParseDeadline(in, nil)
		if got == nil {
			t.Fatalf("ParseDeadline(%q) = nil", in)
		}
		h, m, s := got.Clock()
		if h != 23 || m != 59 || s != 59 || got.Nanosecond() != 999_000_000 {
			t.Errorf("ParseDeadline(%q) time of day = %s, want 23:59:59.999", in, got.Format("15:04:05.000"))
		}
	}
}

func TestParseDeadlineLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	got := ParseDeadline("October 15, 2025", est)
	if got == nil {
		t.Fatal("expected a deadline")
	}
	if s := FormatDeadline(got); s != "2025-10-16T04:59:59.999Z" {
		t.Errorf("got %s, want 2025-10-16T04:59:59.999Z", s)
	}
	if local := got.In(est); local.Day() != 15 || local.Hour() != 23 {
		t.Errorf("calendar date not preserved in location: %s", local)
	}
}

func TestParseDeadlineUnparseable(t *testing.T) {
	for _, in := range []string{"", "Rolling admission", "TBD", "soon-ish", "Oct 15", "October 15"} {
		if got := ParseDeadline(in, time.UTC); got != nil {
			t.Errorf("ParseDeadline(%q) = %s, want nil", in, got)
		}
	}
}

func TestIsRolling(t *testing.T) {
	if !IsRolling("Rolling admission") {
		t.Error("expected rolling")
	}
	if IsRolling("October 15, 2025") {
		t.Error("expected not rolling")
	}
}

func TestFormatDeadlineNil(t *testing.T) {
	if got := FormatDeadline(nil); got != "" {
		t.Errorf("FormatDeadline(nil) = %q, want empty", got)
	}
}
