package domain

import "time"

// PushSubscription is one browser push endpoint for a user. A user may hold
// several (one per browser).
type PushSubscription struct {
	ID        string
	UserID    string
	Endpoint  string
	P256dh    string
	Auth      string
	CreatedAt time.Time
}

// PushPayload is the JSON body handed to the push channel.
type PushPayload struct {
	Title string `json:"title"`
	Body  string `json:"body"`
	Icon  string `json:"icon"`
}
