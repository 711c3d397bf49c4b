package ports

import (
	"context"

	"github.com/AErenK/site-yonetim/internal/core/domain"
)

type NotificationRepository interface {
	Insert(ctx context.Context, notification domain.Notification) error
	ListByUser(ctx context.Context, userID string) ([]domain.Notification, error)
	MarkRead(ctx context.Context, notificationID string) error
	DeleteAll(ctx context.Context) error
}

// Notifier is what the task lifecycle sees: a durable in-app write plus a
// best-effort push. NotifyPush never reports failure back.
type Notifier interface {
	NotifyInApp(ctx context.Context, userID, message string) error
	NotifyPush(ctx context.Context, userID, message string)
}

type NotificationService interface {
	Notifier
	List(ctx context.Context, actor domain.Identity) ([]domain.Notification, error)
	MarkRead(ctx context.Context, actor domain.Identity, notificationID string) error
}
