package ports

import (
	"context"

	"github.com/Madhesh0006/dbms-blood-donation-project/internal/core/domain"
)

// AuthService handles user registration and login.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*domain.User, error)
	// Login returns a signed session token and the matched user.
	// Not-found and wrong-password both collapse to
	// domain.ErrInvalidCredentials at this boundary.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
