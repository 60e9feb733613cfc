package repo

import (
	"context"

	"bloodalert/internal/domain"
	"bloodalert/internal/infra"
	"bloodalert/internal/sqlinline"
)

// NotificationRepositoryPG implements domain.NotificationRepository backed by PostgreSQL.
type NotificationRepositoryPG struct {
	db infra.SQLExecutor
}

// NewNotificationRepository creates a new NotificationRepositoryPG.
func NewNotificationRepository(db infra.SQLExecutor) *NotificationRepositoryPG {
	return &NotificationRepositoryPG{db: db}
}

// Create inserts a mock email record.
func (r *NotificationRepositoryPG) Create(ctx context.Context, n *domain.EmailNotification) error {
	_, err := r.db.Exec(ctx, sqlinline.QInsertNotification,
		n.ID,
		n.AlertID,
		n.ToEmail,
		n.ToName,
		n.Subject,
		n.Body,
		string(n.Status),
		n.DistanceKM,
		n.SentAt,
	)
	return err
}

// ListByRecipient returns notifications addressed to one email, newest first.
func (r *NotificationRepositoryPG) ListByRecipient(ctx context.Context, email string, limit int) ([]domain.EmailNotification, error) {
	return r.list(ctx, sqlinline.QListNotificationsByEmail, email, limit)
}

// ListRecent returns the most recent notifications across all recipients.
func (r *NotificationRepositoryPG) ListRecent(ctx context.Context, limit int) ([]domain.EmailNotification, error) {
	return r.list(ctx, sqlinline.QListNotificationsRecent, limit)
}

func (r *NotificationRepositoryPG) list(ctx context.Context, query string, args ...any) ([]domain.EmailNotification, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.EmailNotification
	for rows.Next() {
		var n domain.EmailNotification
		var status string
		if err := rows.Scan(
			&n.ID,
			&n.AlertID,
			&n.ToEmail,
			&n.ToName,
			&n.Subject,
			&n.Body,
			&status,
			&n.DistanceKM,
			&n.SentAt,
		); err != nil {
			return nil, err
		}
		n.Status = domain.NotificationStatus(status)
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.NotificationRepository = (*NotificationRepositoryPG)(nil)
