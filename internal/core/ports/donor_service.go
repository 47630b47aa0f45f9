package ports

import (
	"context"
	"time"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

// RegisterDonorInput carries all data needed to register a donor.
// LastDonationDate is nil when the donor has never donated.
type RegisterDonorInput struct {
	Name             string
	Gender           string
	Phone            string
	Email            string
	BloodGroup       string
	Location         string
	DOB              time.Time
	LastDonationDate *time.Time
}

// DonorService registers donors and matches them to blood requests.
type DonorService interface {
	// Register links the donor to the owning user, evaluates
	// eligibility and availability, and persists the record.
	Register(ctx context.Context, userID string, input RegisterDonorInput) (*domain.Donor, error)
	// Match returns donors of the given group at the given location,
	// widening to group-only when the exact match is empty.
	Match(ctx context.Context, bloodGroup, location string) ([]domain.Donor, error)
}
