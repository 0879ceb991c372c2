package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/jobboard/internal/models"
)

const jobColumns = `id, employer_id, title, description, experience_required, salary, location,
	country, is_remote, job_type, domain, is_open, posted_at`

// JobRepository stores job postings.
type JobRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewJobRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *JobRepository {
	return &JobRepository{db: db, txGetter: txGetter}
}

// Create inserts an open job.
func (r *JobRepository) Create(ctx context.Context, job models.NewJob) (*models.JobDB, error) {
	query := `
		INSERT INTO jobs (employer_id, title, description, experience_required, salary, location,
		    country, is_remote, job_type, domain, is_open)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, TRUE)
		RETURNING ` + jobColumns
	args := []any{
		job.EmployerID, job.Title, job.Description, job.ExperienceRequired, job.Salary,
		job.Location, job.Country, job.IsRemote, job.JobType, job.Domain,
	}

	var created models.JobDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &created, query, args...)

	logQuery(query, args, created.ID, err)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetByID returns nil, nil when the job does not exist.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.JobDB, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	var job models.JobDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &job, query, id)

	logQuery(query, []any{id}, job.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// Close marks a job closed. It returns false when the job does not exist or belongs to
// another employer.
func (r *JobRepository) Close(ctx context.Context, id, employerID int64) (bool, error) {
	const query = `UPDATE jobs SET is_open = FALSE WHERE id = $1 AND employer_id = $2`

	res, err := executor(ctx, r.db, r.txGetter).ExecContext(ctx, query, id, employerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logQuery(query, []any{id, employerID}, rowsAffected, err)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
