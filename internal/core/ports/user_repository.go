package ports

import (
	"context"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

// UserRepository defines persistence operations for identity records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
}
