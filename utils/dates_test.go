package utils

import (
	"testing"
	"time"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatalf("ParseDate(%q) failed: %v", s, err)
	}
	return d
}

func TestParseDate(t *testing.T) {
	d := mustParse(t, "2026-03-10")
	if d.Hour() != 0 || d.Location() != time.UTC {
		t.Errorf("expected UTC midnight, got %v", d)
	}

	if _, err := ParseDate("10/03/2026"); err == nil {
		t.Error("expected error for wrong layout")
	}
	if _, err := ParseDate("2026-13-40"); err == nil {
		t.Error("expected error for impossible date")
	}
}

func TestDateOf_NormalizesToMidnightUTC(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*3600)
	at := time.Date(2026, 3, 10, 23, 30, 0, 0, loc) // 16:30 UTC cùng ngày

	d := DateOf(at)
	if !d.Equal(mustParse(t, "2026-03-10")) {
		t.Errorf("expected 2026-03-10 UTC, got %v", d)
	}
}

func TestDateRange_Nights(t *testing.T) {
	tests := []struct {
		from, to string
		want     int
	}{
		{"2026-03-10", "2026-03-13", 3},
		{"2026-03-10", "2026-03-11", 1},
		{"2026-03-10", "2026-03-10", 0},
		{"2026-03-13", "2026-03-10", 0},
	}
	for _, tc := range tests {
		r := NewDateRange(mustParse(t, tc.from), mustParse(t, tc.to))
		if got := r.Nights(); got != tc.want {
			t.Errorf("Nights(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestDateRange_DatesExcludesEnd(t *testing.T) {
	r := NewDateRange(mustParse(t, "2026-03-10"), mustParse(t, "2026-03-13"))
	dates := r.Dates()

	if len(dates) != 3 {
		t.Fatalf("expected 3 dates, got %d", len(dates))
	}
	if !dates[0].Equal(mustParse(t, "2026-03-10")) {
		t.Errorf("expected first date 2026-03-10, got %v", dates[0])
	}
	if !dates[2].Equal(mustParse(t, "2026-03-12")) {
		t.Errorf("expected last date 2026-03-12 (check-out excluded), got %v", dates[2])
	}
	for i := 1; i < len(dates); i++ {
		if !dates[i].After(dates[i-1]) {
			t.Errorf("dates not ascending at %d: %v", i, dates)
		}
	}
}

func TestDateRange_EmptyRangeHasNoDates(t *testing.T) {
	r := NewDateRange(mustParse(t, "2026-03-10"), mustParse(t, "2026-03-10"))
	if len(r.Dates()) != 0 {
		t.Errorf("expected no dates for empty range, got %v", r.Dates())
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := NewDateRange(mustParse(t, "2026-03-10"), mustParse(t, "2026-03-13"))

	if !r.Contains(mustParse(t, "2026-03-10")) {
		t.Error("expected range to contain check-in date")
	}
	if !r.Contains(mustParse(t, "2026-03-12")) {
		t.Error("expected range to contain last night")
	}
	if r.Contains(mustParse(t, "2026-03-13")) {
		t.Error("expected range to exclude check-out date")
	}
	if r.Contains(mustParse(t, "2026-03-09")) {
		t.Error("expected range to exclude day before check-in")
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(mustParse(t, "2026-03-05")); got != "2026-03-05" {
		t.Errorf("FormatDate = %q", got)
	}
}
