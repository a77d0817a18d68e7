package date

import (
	"testing"
	"time"
)

func TestRange_Contains(t *testing.T) {
	r := YearRange(2024)
	testCases := []struct {
		name string
		in   Date
		want bool
	}{
		{"first day", New(2024, time.January, 1), true},
		{"last day", New(2024, time.December, 31), true},
		{"day before", New(2023, time.December, 31), false},
		{"day after", New(2025, time.January, 1), false},
		{"absent date", Date{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.in); got != tc.want {
				t.Errorf("Contains(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNewRange(t *testing.T) {
	testCases := []struct {
		in     Date
		period Period
		want   string
	}{
		{New(2025, time.September, 8), Daily, "2025-09-08..2025-09-08"},
		{New(2025, time.September, 10), Weekly, "2025-09-08..2025-09-14"},
		{New(2025, time.January, 1), Weekly, "2024-12-30..2025-01-05"},
		{New(2024, time.February, 10), Monthly, "2024-02-01..2024-02-29"},
		{New(2025, time.July, 4), Yearly, "2025-01-01..2025-12-31"},
	}
	for _, tc := range testCases {
		t.Run(tc.period.String(), func(t *testing.T) {
			if got := NewRange(tc.in, tc.period).String(); got != tc.want {
				t.Errorf("NewRange(%v, %v) = %s, want %s", tc.in, tc.period, got, tc.want)
			}
		})
	}
}
