package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/models"
)

// ProfileRepository stores job seeker profiles.
type ProfileRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewProfileRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ProfileRepository {
	return &ProfileRepository{db: db, txGetter: txGetter}
}

// SeekerProfileExists reports whether the user has filled in a seeker profile.
func (r *ProfileRepository) SeekerProfileExists(ctx context.Context, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM job_seeker_profiles WHERE user_id = $1)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, userID)

	logQuery(query, []any{userID}, exists, err)

	return exists, err
}

// GetSeekerProfile returns nil, nil when the user has no profile.
func (r *ProfileRepository) GetSeekerProfile(ctx context.Context, userID int64) (*models.SeekerProfileDB, error) {
	const query = `
		SELECT user_id, name, location, education, resume_url, updated_at
		FROM job_seeker_profiles
		WHERE user_id = $1
	`

	var profile models.SeekerProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, userID)

	logQuery(query, []any{userID}, profile.UserID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// SaveSeekerProfile creates or replaces the user's profile.
func (r *ProfileRepository) SaveSeekerProfile(ctx context.Context, userID int64, name string, location, education *string) (*models.SeekerProfileDB, error) {
	const query = `
		INSERT INTO job_seeker_profiles (user_id, name, location, education, updated_at)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT (user_id)
		DO UPDATE SET name = EXCLUDED.name, location = EXCLUDED.location,
		    education = EXCLUDED.education, updated_at = NOW()
		RETURNING user_id, name, location, education, resume_url, updated_at
	`
	args := []any{userID, name, location, education}

	var profile models.SeekerProfileDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &profile, query, args...)

	logQuery(query, args, profile.UserID, err)

	if err != nil {
		return nil, err
	}
	return &profile, nil
}
