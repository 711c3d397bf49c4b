package dto

type NotificationItem struct {
	ID        string `json:"id"`
	Message   string `json:"message"`
	Read      bool   `json:"read"`
	CreatedAt string `json:"created_at"`
}
