package ports

import (
	"context"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

// RequestRepository defines persistence operations for blood requests.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.Request) (*domain.Request, error)
	List(ctx context.Context) ([]domain.Request, error)
}

// DonationRepository persists completed-donation records.
type DonationRepository interface {
	Create(ctx context.Context, rec *domain.DonationRecord) (*domain.DonationRecord, error)
}
