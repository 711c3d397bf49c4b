package dto

// SubscribeRequest mirrors the browser's PushSubscription JSON shape.
type SubscribeRequest struct {
	Endpoint string               `json:"endpoint" binding:"required"`
	Keys     SubscribeRequestKeys `json:"keys" binding:"required"`
}

type SubscribeRequestKeys struct {
	P256dh string `json:"p256dh" binding:"required"`
	Auth   string `json:"auth" binding:"required"`
}

type UnsubscribeRequest struct {
	Endpoint string `json:"endpoint" binding:"required"`
}
