package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AErenK/site-yonetim/internal/core/domain"
	"github.com/AErenK/site-yonetim/internal/core/ports"
)

const insertNotificationQuery = `
INSERT INTO notifications (id, user_id, message, ` + "`read`" + `, created_at)
VALUES (:id, :user_id, :message, :read, :created_at);
`

type NotificationRepository struct {
	db *sqlx.DB
}

type notificationRow struct {
	ID        string    `db:"id"`
	UserID    string    `db:"user_id"`
	Message   string    `db:"message"`
	Read      bool      `db:"read"`
	CreatedAt time.Time `db:"created_at"`
}

var _ ports.NotificationRepository = (*NotificationRepository)(nil)

func NewNotificationRepository(db *sqlx.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Insert(ctx context.Context, notification domain.Notification) error {
	_, err := r.db.NamedExecContext(ctx, insertNotificationQuery, map[string]any{
		"id":         notification.ID,
		"user_id":    notification.UserID,
		"message":    notification.Message,
		"read":       notification.Read,
		"created_at": notification.CreatedAt,
	})
	return err
}

func (r *NotificationRepository) ListByUser(ctx context.Context, userID string) ([]domain.Notification, error) {
	var rows []notificationRow
	err := r.db.SelectContext(ctx, &rows,
		`SELECT * FROM notifications WHERE user_id = ? ORDER BY created_at DESC;`, userID)
	if err != nil {
		return nil, err
	}

	notifications := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, domain.Notification{
			ID:        row.ID,
			UserID:    row.UserID,
			Message:   row.Message,
			Read:      row.Read,
			CreatedAt: row.CreatedAt,
		})
	}
	return notifications, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, notificationID string) error {
	var exists int
	err := r.db.GetContext(ctx, &exists, `SELECT 1 FROM notifications WHERE id = ?;`, notificationID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrNotificationNotFound
	}
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, "UPDATE notifications SET `read` = TRUE WHERE id = ?;", notificationID)
	return err
}

func (r *NotificationRepository) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications;`)
	return err
}
