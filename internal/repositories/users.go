package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/models"
)

const userColumns = `id, email, password_hash, role, is_paid, email_verified, created_at`

// UserRepository stores accounts.
type UserRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserRepository {
	return &UserRepository{db: db, txGetter: txGetter}
}

// GetByEmail returns nil, nil when no user has the email.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.get(ctx, query, email)
}

// GetByID returns nil, nil when the user does not exist.
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.get(ctx, query, id)
}

func (r *UserRepository) get(ctx context.Context, query string, arg any) (*models.UserDB, error) {
	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, arg)

	logQuery(query, []any{arg}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Create inserts a user. A taken email yields apperrors.ErrDuplicate.
func (r *UserRepository) Create(ctx context.Context, email, passwordHash string, role models.Role, isPaid bool) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, password_hash, role, is_paid, email_verified)
		VALUES ($1, $2, $3, $4, FALSE)
		ON CONFLICT (email) DO NOTHING
		RETURNING ` + userColumns

	var user models.UserDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &user, query, email, passwordHash, role, isPaid)

	// the hash is not logged
	logQuery(query, []any{email, role, isPaid}, user.ID, err)

	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return nil, fmt.Errorf("user %s: %w", email, apperrors.ErrDuplicate)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}
