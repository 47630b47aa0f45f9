package ports

import (
	"context"
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

// RequestInput carries the details of a blood-need record.
type RequestInput struct {
	RequesterName   string
	RequesterPhone  string
	RequesterEmail  string
	PatientName     string
	PatientAge      int
	PatientGender   string
	BloodGroup      string
	UnitsRequired   int
	HospitalName    string
	HospitalAddress string
	Location        string
	RequiredDate    time.Time
}

// NotifyInput carries the matching criteria and the request details to
// embed in the notification emails.
type NotifyInput struct {
	BloodGroup string
	Location   string
	Details    RequestInput
}

// NotifyResult summarises a notification fan-out. Attempted counts
// donors whose message was submitted to the transport; it says nothing
// about delivery.
type NotifyResult struct {
	Matched   int
	Attempted int
	Skipped   int
}

// DonationInput carries a completed-donation submission.
type DonationInput struct {
	DonorName      string
	DonorEmail     string
	PatientName    string
	RequesterEmail string
}

// RequestService records blood requests and coordinates donor
// notification.
type RequestService interface {
	Record(ctx context.Context, input RequestInput) (*domain.Request, error)
	Notify(ctx context.Context, input NotifyInput) (*NotifyResult, error)
	List(ctx context.Context) ([]domain.Request, error)
	RecordDonation(ctx context.Context, input DonationInput) (*domain.DonationRecord, error)
}
