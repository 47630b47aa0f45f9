package domain

import "time"

// DonationRecord is the historical record of a completed donation,
// submitted by the donor after the fact. It has no further lifecycle.
type DonationRecord struct {
	ID             string    `json:"record_id" bson:"_id,omitempty"`
	DonorName      string    `json:"d_name" bson:"donor_name"`
	DonorEmail     string    `json:"d_email" bson:"donor_email"`
	PatientName    string    `json:"p_name" bson:"patient_name"`
	RequesterEmail string    `json:"u_email" bson:"requester_email"`
	RecordedAt     time.Time `json:"recorded_at" bson:"recorded_at"`
}
