package mapper

import (
	"time"

	"github.com/AErenK/site-yonetim/internal/adapter/http/dto"
	"github.com/AErenK/site-yonetim/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

// ToUserItem never exposes the stored credential.
func ToUserItem(user domain.User) dto.UserItem {
	return dto.UserItem{
		ID:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}
