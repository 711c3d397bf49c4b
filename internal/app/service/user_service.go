package service

import (
	"context"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository
}

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

func (s *UserService) List(ctx context.Context, actor domain.Identity) ([]domain.User, error) {
	if !actor.IsAdmin() {
		return nil, domain.ErrUnauthorized
	}
	return s.users.List(ctx)
}

// Delete removes an employee account. Admins cannot delete themselves, and a
// user that still owns tasks or notifications is reported as a conflict
// rather than cascaded.
func (s *UserService) Delete(ctx context.Context, actor domain.Identity, userID string) error {
	if !actor.IsAdmin() {
		return domain.ErrUnauthorized
	}
	if userID == actor.ID {
		return domain.ErrSelfDeletion
	}
	return s.users.Delete(ctx, userID)
}

var _ ports.UserService = (*UserService)(nil)
