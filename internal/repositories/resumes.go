package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/models"
)

const resumeColumns = `id, user_id, title, file_url, file_name, is_default, created_at`

// ResumeRepository stores uploaded resumes.
type ResumeRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewResumeRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ResumeRepository {
	return &ResumeRepository{db: db, txGetter: txGetter}
}

// ListByUser returns the user's resumes, default first, then newest first.
func (r *ResumeRepository) ListByUser(ctx context.Context, userID int64) ([]models.ResumeDB, error) {
	query := `
		SELECT ` + resumeColumns + `
		FROM resumes
		WHERE user_id = $1
		ORDER BY is_default DESC, created_at DESC, id DESC
	`

	resumes := []models.ResumeDB{}
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &resumes, query, userID)

	logQuery(query, []any{userID}, len(resumes), err)

	if err != nil {
		return nil, err
	}
	return resumes, nil
}

// ExistsForUser reports whether the resume exists and belongs to the user.
func (r *ResumeRepository) ExistsForUser(ctx context.Context, resumeID, userID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM resumes WHERE id = $1 AND user_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, resumeID, userID)

	logQuery(query, []any{resumeID, userID}, exists, err)

	return exists, err
}

// Create inserts a resume. The first resume of a user becomes the default one.
// Two concurrent first uploads race on the resumes_one_default_per_user index;
// the loser is stored as a regular resume.
func (r *ResumeRepository) Create(ctx context.Context, userID int64, title, fileURL, fileName string) (*models.ResumeDB, error) {
	defaultQuery := `
		INSERT INTO resumes (user_id, title, file_url, file_name, is_default)
		VALUES ($1, $2, $3, $4, NOT EXISTS (SELECT 1 FROM resumes WHERE user_id = $1 AND is_default))
		ON CONFLICT (user_id) WHERE is_default DO NOTHING
		RETURNING ` + resumeColumns
	args := []any{userID, title, fileURL, fileName}

	ex := executor(ctx, r.db, r.txGetter)

	var resume models.ResumeDB
	err := sqlx.GetContext(ctx, ex, &resume, defaultQuery, args...)

	logQuery(defaultQuery, args, resume.ID, err)

	if err == nil {
		return &resume, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	plainQuery := `
		INSERT INTO resumes (user_id, title, file_url, file_name, is_default)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING ` + resumeColumns

	err = sqlx.GetContext(ctx, ex, &resume, plainQuery, args...)

	logQuery(plainQuery, args, resume.ID, err)

	if err != nil {
		return nil, err
	}
	return &resume, nil
}
