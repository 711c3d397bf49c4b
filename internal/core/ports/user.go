package ports

import (
	"context"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

type UserRepository interface {
	Insert(ctx context.Context, user domain.User) error
	GetByID(ctx context.Context, userID string) (domain.User, error)
	GetByEmail(ctx context.Context, email string) (domain.User, error)
	Count(ctx context.Context) (int64, error)
	ListByRole(ctx context.Context, role domain.Role) ([]domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Delete(ctx context.Context, userID string) error
	DeleteByRole(ctx context.Context, role domain.Role) error
}

type AuthService interface {
	Register(ctx context.Context, input domain.RegisterInput) (domain.User, error)
	Login(ctx context.Context, email, password string) (domain.Identity, error)
	Resolve(ctx context.Context, userID string) (domain.Identity, error)
}

type UserService interface {
	List(ctx context.Context, actor domain.Identity) ([]domain.User, error)
	Delete(ctx context.Context, actor domain.Identity, userID string) error
}
