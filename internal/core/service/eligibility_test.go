package service

import (
	"errors"
	"testing"
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestValidateAge_MissingBirthDate(t *testing.T) {
	_, err := ValidateAge(time.Time{}, date(2026, 6, 15))
	if !errors.Is(err, domain.ErrMissingBirthDate) {
		t.Fatalf("expected ErrMissingBirthDate, got %v", err)
	}
}

func TestValidateAge_Boundaries(t *testing.T) {
	today := date(2026, 6, 15)

	cases := []struct {
		name    string
		dob     time.Time
		wantAge int
		wantErr error
	}{
		{"exactly 18 today", date(2008, 6, 15), 18, nil},
		{"18 tomorrow", date(2008, 6, 16), 17, domain.ErrUnderage},
		{"16 years old", date(2010, 6, 15), 16, domain.ErrUnderage},
		{"mid-range", date(1990, 1, 1), 36, nil},
		{"exactly 65", date(1961, 6, 15), 65, nil},
		{"over 65", date(1960, 6, 14), 66, domain.ErrOverage},
		{"birthday later this year", date(2000, 12, 1), 25, nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			age, err := ValidateAge(tc.dob, today)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error: want %v, got %v", tc.wantErr, err)
			}
			if age != tc.wantAge {
				t.Errorf("age: want %d, got %d", tc.wantAge, age)
			}
		})
	}
}

func TestAvailable_NeverDonated(t *testing.T) {
	today := date(2026, 6, 15)

	if !Available(nil, today) {
		t.Error("nil last donation must be available")
	}
	zero := time.Time{}
	if !Available(&zero, today) {
		t.Error("zero last donation must be available")
	}
}

func TestAvailable_CooldownBoundary(t *testing.T) {
	today := date(2026, 6, 15)

	cases := []struct {
		name string
		last time.Time
		want bool
	}{
		{"exactly 3 months ago", date(2026, 3, 15), true},
		{"one day short of 3 months", date(2026, 3, 16), false},
		{"2 months 29 days ago", date(2026, 3, 17), false},
		{"well past cooldown", date(2025, 1, 1), true},
		{"donated yesterday", date(2026, 6, 14), false},
		{"over a year but computed in whole months", date(2025, 6, 20), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			last := tc.last
			if got := Available(&last, today); got != tc.want {
				t.Errorf("Available(%s): want %v, got %v", tc.last.Format("2006-01-02"), tc.want, got)
			}
		})
	}
}

func TestWholeMonths_MonthEndClamping(t *testing.T) {
	// Nov 30 -> Feb 28 is 2 months and 29 days: not yet 3 whole months.
	if got := wholeMonths(date(2025, 11, 30), date(2026, 2, 28)); got != 2 {
		t.Errorf("Nov 30 -> Feb 28: want 2, got %d", got)
	}
	// Nov 28 -> Feb 28 is exactly 3 months.
	if got := wholeMonths(date(2025, 11, 28), date(2026, 2, 28)); got != 3 {
		t.Errorf("Nov 28 -> Feb 28: want 3, got %d", got)
	}
	if got := wholeMonths(date(2026, 6, 15), date(2026, 6, 15)); got != 0 {
		t.Errorf("same day: want 0, got %d", got)
	}
}
