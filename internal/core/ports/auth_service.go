package ports

import (
	"context"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

type AuthService interface {
	// Register creates a user with role "user" and returns a fresh token.
	Register(ctx context.Context, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
