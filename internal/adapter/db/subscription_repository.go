package db

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

const insertSubscriptionQuery = `
INSERT INTO push_subscriptions (id, user_id, endpoint, p256dh, auth, created_at)
VALUES (:id, :user_id, :endpoint, :p256dh, :auth, :created_at);
`

type PushSubscriptionRepository struct {
	db *sqlx.DB
}

type subscriptionRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Endpoint  string    `db:"endpoint"`
	P256dh    string    `db:"p256dh"`
	Auth      string    `db:"auth"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.PushSubscriptionRepository = (*PushSubscriptionRepository)(nil)

func NewPushSubscriptionRepository(db *sqlx.DB) *PushSubscriptionRepository {
	return &PushSubscriptionRepository{db: db}
}

func (r *PushSubscriptionRepository) Insert(ctx context.Context, sub domain.PushSubscription) error {
	_, err := r.db.NamedExecContext(ctx, insertSubscriptionQuery, map[string]any{
		"id":         sub.ID,
		"user_id":    sub.UserID,
		"endpoint":   sub.Endpoint,
		"p256dh":     sub.P256dh,
		"auth":       sub.Auth,
		"created_at": sub.CreatedAt,
	})
	return err
}

func (r *PushSubscriptionRepository) ListByUser(ctx context.Context, userID string) ([]domain.PushSubscription, error) {
	var rows []subscriptionRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM push_subscriptions WHERE user_id = ?;`, userID)
	if err != nil {
		return nil, err
	}

	subs := make([]domain.PushSubscription, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, domain.PushSubscription{
			ID:        row.ID,
			UserID:    row.UserID,
			Endpoint:  row.Endpoint,
			P256dh:    row.P256dh,
			Auth:      row.Auth,
			CreatedAt: row.CreatedAt,
		})
	}
	return subs, nil
}

func (r *PushSubscriptionRepository) Delete(ctx context.Context, subscriptionID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM push_subscriptions WHERE id = ?;`, subscriptionID)
	return err
}

func (r *PushSubscriptionRepository) DeleteByEndpoint(ctx context.Context, userID, endpoint string) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM push_subscriptions WHERE user_id = ? AND endpoint = ?;`, userID, endpoint)
	return err
}

func (r *PushSubscriptionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM push_subscriptions;`)
	return err
}
