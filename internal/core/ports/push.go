package ports

import (
	"context"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

type PushSubscriptionRepository interface {
	Insert(ctx context.Context, sub domain.PushSubscription) error
	ListByUser(ctx context.Context, userID string) ([]domain.PushSubscription, error)
	Delete(ctx context.Context, subscriptionID string) error
	DeleteByEndpoint(ctx context.Context, userID, endpoint string) error
	DeleteAll(ctx context.Context) error
}

// PushChannel delivers one payload to one endpoint. Implementations return
// domain.ErrSubscriptionGone (wrapped) when the endpoint answered that it is
// permanently gone.
type PushChannel interface {
	Send(ctx context.Context, sub domain.PushSubscription, payload domain.PushPayload) error
}

type PushService interface {
	Subscribe(ctx context.Context, actor domain.Identity, endpoint, p256dh, auth string) error
	Unsubscribe(ctx context.Context, actor domain.Identity, endpoint string) error
}
