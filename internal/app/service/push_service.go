package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

type PushService struct {
	subscriptions ports.PushSubscriptionRepository
	now           func() time.Time
}

func NewPushService(subscriptions ports.PushSubscriptionRepository) *PushService {
	return &PushService{subscriptions: subscriptions, now: time.Now}
}

func (s *PushService) Subscribe(ctx context.Context, actor domain.Identity, endpoint, p256dh, auth string) error {
	if strings.TrimSpace(endpoint) == "" || p256dh == "" || auth == "" {
		return domain.ErrValidation
	}
	return s.subscriptions.Insert(ctx, domain.PushSubscription{
		ID:        uuid.NewString(),
		UserID:    actor.ID,
		Endpoint:  endpoint,
		P256dh:    p256dh,
		Auth:      auth,
		CreatedAt: s.now(),
	})
}

func (s *PushService) Unsubscribe(ctx context.Context, actor domain.Identity, endpoint string) error {
	if strings.TrimSpace(endpoint) == "" {
		return domain.ErrValidation
	}
	return s.subscriptions.DeleteByEndpoint(ctx, actor.ID, endpoint)
}

var _ ports.PushService = (*PushService)(nil)
