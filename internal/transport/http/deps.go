package http

import (
	"context"

	"github.com/CcubeNetvix/medTracker/internal/domain"
)

// UserRepository is the minimal interface the router requires from the
// external user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Put(ctx context.Context, u *domain.User) error
}
