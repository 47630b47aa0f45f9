package domain

import (
	"errors"
	"time"
)

// BloodGroup is one of the eight ABO/Rh groups accepted at registration.
type BloodGroup string

const (
	GroupAPositive  BloodGroup = "A+"
	GroupANegative  BloodGroup = "A-"
	GroupBPositive  BloodGroup = "B+"
	GroupBNegative  BloodGroup = "B-"
	GroupABPositive BloodGroup = "AB+"
	GroupABNegative BloodGroup = "AB-"
	GroupOPositive  BloodGroup = "O+"
	GroupONegative  BloodGroup = "O-"
)

var bloodGroups = map[BloodGroup]struct{}{
	GroupAPositive: {}, GroupANegative: {},
	GroupBPositive: {}, GroupBNegative: {},
	GroupABPositive: {}, GroupABNegative: {},
	GroupOPositive: {}, GroupONegative: {},
}

var ErrInvalidBloodGroup = errors.New("invalid blood group")
var ErrDonorNotFound = errors.New("donor not found")
var ErrMissingBirthDate = errors.New("date of birth is required")
var ErrUnderage = errors.New("donor must be at least 18 years old")
var ErrOverage = errors.New("donor must be at most 65 years old")

// ParseBloodGroup validates a raw blood group string.
func ParseBloodGroup(s string) (BloodGroup, error) {
	bg := BloodGroup(s)
	if _, ok := bloodGroups[bg]; !ok {
		return "", ErrInvalidBloodGroup
	}
	return bg, nil
}

// Donor is a registered user who is willing to give blood.
// AvailabilityStatus is derived at registration from the last donation
// date: true when the donor has never donated or at least three whole
// calendar months have elapsed since the last donation.
type Donor struct {
	ID                 string     `json:"donor_id" bson:"_id,omitempty"`
	UserID             string     `json:"user_id" bson:"user_id"`
	Username           string     `json:"username" bson:"username"`
	Name               string     `json:"name" bson:"name"`
	Gender             string     `json:"gender" bson:"gender"`
	Phone              string     `json:"phone_no" bson:"phone_no"`
	Email              string     `json:"email" bson:"email"`
	BloodGroup         BloodGroup `json:"bloodGroup" bson:"blood_group"`
	Location           string     `json:"location" bson:"location"`
	DOB                time.Time  `json:"dob" bson:"dob"`
	LastDonationDate   *time.Time `json:"lastDonationDate,omitempty" bson:"last_donation_date,omitempty"`
	AvailabilityStatus bool       `json:"availabilityStatus" bson:"availability_status"`
	CreatedAt          time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at" bson:"updated_at"`
}
