package service

import (
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

const (
	// MinDonorAge and MaxDonorAge bound the legal donor age at
	// registration time.
	MinDonorAge = 18
	MaxDonorAge = 65

	// donationCooldownMonths is the minimum number of whole calendar
	// months that must elapse between donations.
	donationCooldownMonths = 3
)

// ValidateAge computes the donor's age in whole years relative to
// today. It fails with domain.ErrMissingBirthDate when dob is the zero
// time, domain.ErrUnderage below MinDonorAge, and domain.ErrOverage
// above MaxDonorAge. Age exactly MinDonorAge is accepted.
func ValidateAge(dob, today time.Time) (int, error) {
	if dob.IsZero() {
		return 0, domain.ErrMissingBirthDate
	}

	age := wholeYears(dob, today)
	if age < MinDonorAge {
		return age, domain.ErrUnderage
	}
	if age > MaxDonorAge {
		return age, domain.ErrOverage
	}
	return age, nil
}

// Available reports whether a donor may donate today. A donor who has
// never donated is always available; otherwise the cooldown must have
// fully elapsed. The boundary is month-granular: exactly three calendar
// months since the last donation is available, one day short is not.
func Available(lastDonation *time.Time, today time.Time) bool {
	if lastDonation == nil || lastDonation.IsZero() {
		return true
	}
	return wholeMonths(*lastDonation, today) >= donationCooldownMonths
}

// wholeYears counts completed calendar years from 'from' to 'to'.
func wholeYears(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

// wholeMonths counts completed calendar months from 'from' to 'to'.
// The day of month decides whether the current month is complete.
func wholeMonths(from, to time.Time) int {
	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	if to.Day() < from.Day() {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}
