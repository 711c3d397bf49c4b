package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

const (
	pushTitle = "Site Yönetim"
	pushIcon  = "/icon.png"
)

// NotificationService persists in-app notifications and fans push messages
// out to every subscription of a recipient. Push delivery is fire-and-forget:
// nothing here propagates back to the lifecycle operation that triggered it.
type NotificationService struct {
	notifications ports.NotificationRepository
	subscriptions ports.PushSubscriptionRepository
	channel       ports.PushChannel
	now           func() time.Time
}

func NewNotificationService(
	notifications ports.NotificationRepository,
	subscriptions ports.PushSubscriptionRepository,
	channel ports.PushChannel,
) *NotificationService {
	return &NotificationService{
		notifications: notifications,
		subscriptions: subscriptions,
		channel:       channel,
		now:           time.Now,
	}
}

func (s *NotificationService) NotifyInApp(ctx context.Context, userID, message string) error {
	return s.notifications.Insert(ctx, domain.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Message:   message,
		CreatedAt: s.now(),
	})
}

// NotifyPush delivers to all of the user's subscriptions concurrently. Each
// send is independent: a failure on one endpoint never blocks the others. An
// endpoint that reports itself permanently gone is removed from storage; any
// other failure is logged and dropped.
func (s *NotificationService) NotifyPush(ctx context.Context, userID, message string) {
	subs, err := s.subscriptions.ListByUser(ctx, userID)
	if err != nil {
		zap.L().Error("failed to list push subscriptions", zap.String("user_id", userID), zap.Error(err))
		return
	}
	if len(subs) == 0 {
		return
	}

	payload := domain.PushPayload{
		Title: pushTitle,
		Body:  message,
		Icon:  pushIcon,
	}

	var wg sync.WaitGroup
	for _, sub := range subs {
		wg.Add(1)
		go func(sub domain.PushSubscription) {
			defer wg.Done()
			s.sendToSubscription(ctx, sub, payload)
		}(sub)
	}
	wg.Wait()
}

func (s *NotificationService) sendToSubscription(ctx context.Context, sub domain.PushSubscription, payload domain.PushPayload) {
	err := s.channel.Send(ctx, sub, payload)
	if err == nil {
		return
	}

	if errors.Is(err, domain.ErrSubscriptionGone) {
		if deleteErr := s.subscriptions.Delete(ctx, sub.ID); deleteErr != nil {
			zap.L().Error("failed to remove gone subscription", zap.String("subscription_id", sub.ID), zap.Error(deleteErr))
		}
		return
	}

	zap.L().Warn("push delivery failed", zap.String("subscription_id", sub.ID), zap.Error(err))
}

func (s *NotificationService) List(ctx context.Context, actor domain.Identity) ([]domain.Notification, error) {
	return s.notifications.ListByUser(ctx, actor.ID)
}

// MarkRead intentionally skips an ownership check: any authenticated caller
// may mark any notification, matching the shared-inbox behavior of the
// original application.
func (s *NotificationService) MarkRead(ctx context.Context, actor domain.Identity, notificationID string) error {
	return s.notifications.MarkRead(ctx, notificationID)
}

var _ ports.NotificationService = (*NotificationService)(nil)
