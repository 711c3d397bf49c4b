package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

type AuthService struct {
	users ports.UserRepository
	now   func() time.Time
}

func NewAuthService(users ports.UserRepository) *AuthService {
	return &AuthService{users: users, now: time.Now}
}

// Register creates an account. The very first account becomes ADMIN; everyone
// after that is an EMPLOYEE.
func (s *AuthService) Register(ctx context.Context, input domain.RegisterInput) (domain.User, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	if name == "" || email == "" || input.Password == "" {
		return domain.User{}, domain.ErrValidation
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return domain.User{}, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return domain.User{}, err
	}

	count, err := s.users.Count(ctx)
	if err != nil {
		return domain.User{}, err
	}

	role := domain.RoleEmployee
	if count == 0 {
		role = domain.RoleAdmin
	}

	user := domain.User{
		ID:        uuid.NewString(),
		Name:      name,
		Email:     email,
		Password:  input.Password,
		Role:      role,
		CreatedAt: s.now(),
	}

	if err := s.users.Insert(ctx, user); err != nil {
		return domain.User{}, err
	}

	return user, nil
}

// Login checks the credential by exact match against the stored password.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.Identity, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return domain.Identity{}, domain.ErrValidation
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return domain.Identity{}, domain.ErrInvalidCredentials
		}
		return domain.Identity{}, err
	}

	if user.Password != password {
		return domain.Identity{}, domain.ErrInvalidCredentials
	}

	return identityOf(user), nil
}

// Resolve turns a session user id into the caller identity, or reports that
// no such user exists anymore.
func (s *AuthService) Resolve(ctx context.Context, userID string) (domain.Identity, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return domain.Identity{}, err
	}
	return identityOf(user), nil
}

func identityOf(user domain.User) domain.Identity {
	return domain.Identity{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}

var _ ports.AuthService = (*AuthService)(nil)
