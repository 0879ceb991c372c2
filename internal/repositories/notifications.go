package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/models"
)

const notificationColumns = `id, user_id, title, message, type, related_application_id, is_read, created_at`

// NotificationRepository stores user notifications.
type NotificationRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationRepository {
	return &NotificationRepository{db: db, txGetter: txGetter}
}

// Create inserts a notification; ID, IsRead and CreatedAt are filled from the stored row.
func (r *NotificationRepository) Create(ctx context.Context, n *models.NotificationDB) error {
	query := `
		INSERT INTO notifications (user_id, title, message, type, related_application_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + notificationColumns
	args := []any{n.UserID, n.Title, n.Message, n.Type, n.RelatedApplicationID}

	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), n, query, args...)

	logQuery(query, args, n.ID, err)

	return err
}

// ListByUser returns the newest notifications of a user.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]models.NotificationDB, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`

	notifications := []models.NotificationDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &notifications, query, userID, limit)

	logQuery(query, []any{userID, limit}, len(notifications), err)

	if err != nil {
		return nil, err
	}
	return notifications, nil
}
