package dateutil

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"simple", date(2025, time.January, 15), 1, date(2025, time.February, 15)},
		{"year rollover", date(2025, time.November, 10), 3, date(2026, time.February, 10)},
		{"clamp to february", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"clamp to leap february", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"clamp to short month", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"zero months", date(2025, time.June, 5), 0, date(2025, time.June, 5)},
		{"negative", date(2025, time.March, 15), -2, date(2025, time.January, 15)},
		{"many months", date(2025, time.January, 1), 36, date(2028, time.January, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AddMonths(tt.start, tt.months)
			if !got.Equal(tt.want) {
				t.Fatalf("AddMonths(%v, %d) = %v, want %v", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestAddMonthsPreservesClock(t *testing.T) {
	start := time.Date(2025, time.January, 31, 13, 45, 30, 0, time.UTC)
	got := AddMonths(start, 1)
	if got.Hour() != 13 || got.Minute() != 45 || got.Second() != 30 {
		t.Fatalf("clock not preserved: %v", got)
	}
}

func TestMonthsBetween(t *testing.T) {
	if got := MonthsBetween(date(2025, time.January, 1), date(2027, time.January, 1)); got != 24 {
		t.Fatalf("expected 24, got %d", got)
	}
	if got := MonthsBetween(date(2025, time.June, 1), date(2025, time.March, 1)); got != -3 {
		t.Fatalf("expected -3, got %d", got)
	}
}

func TestDaysInMonth(t *testing.T) {
	if got := DaysInMonth(2024, time.February); got != 29 {
		t.Fatalf("expected 29, got %d", got)
	}
	if got := DaysInMonth(2025, time.February); got != 28 {
		t.Fatalf("expected 28, got %d", got)
	}
	if got := DaysInMonth(2025, time.April); got != 30 {
		t.Fatalf("expected 30, got %d", got)
	}
}

func TestStartOfDay(t *testing.T) {
	d := time.Date(2025, time.May, 12, 18, 4, 59, 123, time.UTC)
	got := StartOfDay(d)
	want := date(2025, time.May, 12)
	if !got.Equal(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}
