package ports

import (
	"context"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

// DonorRepository defines persistence operations for donor records.
// Location matching is exact after normalization (trimmed,
// case-insensitive); ordering of the returned slice is store-defined.
type DonorRepository interface {
	Create(ctx context.Context, donor *domain.Donor) (*domain.Donor, error)
	// FindByGroupAndLocation returns donors matching both the blood
	// group and the location.
	FindByGroupAndLocation(ctx context.Context, group domain.BloodGroup, location string) ([]domain.Donor, error)
	// FindByGroup returns donors of the given blood group regardless
	// of location. Used as the widening fallback when the exact
	// location query is empty.
	FindByGroup(ctx context.Context, group domain.BloodGroup) ([]domain.Donor, error)
}
