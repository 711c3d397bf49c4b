package ports

import (
	"context"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

type AdminService interface {
	Reset(ctx context.Context, actor domain.Identity) error
}
