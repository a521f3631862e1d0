package postgres

import (
	"context"
	"database/sql"

	"obradiary/internal/model"
	"obradiary/internal/repository"
)

// NotificationPostgres is a PostgreSQL implementation of
// repository.NotificationRepository.
type NotificationPostgres struct {
	db *sql.DB
}

// NewNotificationPostgres creates a new NotificationPostgres repository.
func NewNotificationPostgres(db *sql.DB) *NotificationPostgres {
	return &NotificationPostgres{db: db}
}

var _ repository.NotificationRepository = (*NotificationPostgres)(nil)

// Create inserts a new notification row and returns the stored record.
func (r *NotificationPostgres) Create(ctx context.Context, n *model.Notification) (*model.Notification, error) {
	const q = `
		INSERT INTO notifications (id, obra_id, user_id, title, message, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, obra_id, user_id, title, message, type, is_read, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		n.ID,
		n.ObraID,
		n.UserID,
		n.Title,
		n.Message,
		n.Type,
		n.IsRead,
		n.CreatedAt,
	)
	var out model.Notification
	if err := scanNotification(row.Scan, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByObra returns the site's notifications, newest created_at first, capped at limit.
func (r *NotificationPostgres) ListByObra(ctx context.Context, obraID string, limit int) ([]model.Notification, error) {
	const q = `
		SELECT id, obra_id, user_id, title, message, type, is_read, created_at
		FROM notifications
		WHERE obra_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, q, obraID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		if err := scanNotification(rows.Scan, &n); err != nil {
			return nil, err
		}
		items = append(items, n)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// MarkRead flips is_read to true. Rows affected is deliberately ignored:
// marking a missing or already-read notification succeeds.
func (r *NotificationPostgres) MarkRead(ctx context.Context, id string) error {
	const q = `UPDATE notifications SET is_read = TRUE WHERE id = $1`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	_, _ = res.RowsAffected()
	return nil
}

// CountUnreadByObra returns the number of the site's unread notifications.
func (r *NotificationPostgres) CountUnreadByObra(ctx context.Context, obraID string) (int, error) {
	const q = `SELECT COUNT(*) FROM notifications WHERE obra_id = $1 AND NOT is_read`
	var n int
	if err := r.db.QueryRowContext(ctx, q, obraID).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// DeleteAll wipes the notifications collection.
func (r *NotificationPostgres) DeleteAll(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM notifications`)
	return err
}

func scanNotification(scan func(dest ...any) error, n *model.Notification) error {
	return scan(
		&n.ID,
		&n.ObraID,
		&n.UserID,
		&n.Title,
		&n.Message,
		&n.Type,
		&n.IsRead,
		&n.CreatedAt,
	)
}
