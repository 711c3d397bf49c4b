package push

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	webpush "github.com/SherClockHolmes/webpush-go"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

const sendTimeout = 30 * time.Second

// WebPushChannel delivers payloads over the Web Push protocol with VAPID
// authentication. It is the only outbound network dependency of the service.
type WebPushChannel struct {
	subscriber string
	publicKey  string
	privateKey string
	client     *http.Client
}

var _ ports.PushChannel = (*WebPushChannel)(nil)

func NewWebPushChannel(subscriber, publicKey, privateKey string) *WebPushChannel {
	return &WebPushChannel{
		subscriber: subscriber,
		publicKey:  publicKey,
		privateKey: privateKey,
		client:     &http.Client{Timeout: sendTimeout},
	}
}

func (c *WebPushChannel) Send(ctx context.Context, sub domain.PushSubscription, payload domain.PushPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	resp, err := webpush.SendNotificationWithContext(ctx, body, &webpush.Subscription{
		Endpoint: sub.Endpoint,
		Keys: webpush.Keys{
			Auth:   sub.Auth,
			P256dh: sub.P256dh,
		},
	}, &webpush.Options{
		Subscriber:      c.subscriber,
		VAPIDPublicKey:  c.publicKey,
		VAPIDPrivateKey: c.privateKey,
		HTTPClient:      c.client,
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	// 410 means the endpoint is permanently gone; 404 endpoints behave the
	// same way in practice and get the same treatment.
	if resp.StatusCode == http.StatusGone || resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("endpoint answered %d: %w", resp.StatusCode, domain.ErrSubscriptionGone)
	}
	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("push endpoint answered %d", resp.StatusCode)
	}

	return nil
}
