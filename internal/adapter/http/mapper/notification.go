package mapper

import (
	"time"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/core/domain"
)

func ToNotificationItems(notifications []domain.Notification) []dto.NotificationItem {
	items := make([]dto.NotificationItem, 0, len(notifications))
	for _, notification := range notifications {
		items = append(items, dto.NotificationItem{
			ID:        notification.ID,
			Message:   notification.Message,
			Read:      notification.Read,
			CreatedAt: notification.CreatedAt.Format(time.RFC3339),
		})
	}
	return items
}
