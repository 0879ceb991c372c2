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

const applicationColumns = `id, job_id, seeker_id, resume_id, status, application_date`

// ApplicationRepository stores job applications.
type ApplicationRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewApplicationRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ApplicationRepository {
	return &ApplicationRepository{db: db, txGetter: txGetter}
}

// Exists reports whether the seeker already applied to the job.
func (r *ApplicationRepository) Exists(ctx context.Context, jobID, seekerID int64) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM applications WHERE job_id = $1 AND seeker_id = $2)`

	var exists bool
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &exists, query, jobID, seekerID)

	logQuery(query, []any{jobID, seekerID}, exists, err)

	return exists, err
}

// Create inserts an application with status applied. A second application for the same
// (job, seeker) pair yields apperrors.ErrDuplicate.
func (r *ApplicationRepository) Create(ctx context.Context, jobID, seekerID, resumeID int64) (*models.ApplicationDB, error) {
	query := `
		INSERT INTO applications (job_id, seeker_id, resume_id, status, application_date)
		VALUES ($1, $2, $3, $4, NOW())
		ON CONFLICT ON CONSTRAINT applications_job_seeker_key DO NOTHING
		RETURNING ` + applicationColumns
	args := []any{jobID, seekerID, resumeID, models.StatusApplied}

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, args...)

	logQuery(query, args, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) || isUniqueViolation(err) {
		return nil, fmt.Errorf("application for job %d: %w", jobID, apperrors.ErrDuplicate)
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetOwnedByEmployer loads an application together with its job and locks the row.
// It returns nil, nil when the application does not exist or its job belongs to another employer.
func (r *ApplicationRepository) GetOwnedByEmployer(ctx context.Context, applicationID, employerID int64) (*models.OwnedApplication, error) {
	const query = `
		SELECT a.id, a.job_id, a.seeker_id, a.status, j.title AS job_title, j.employer_id
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		WHERE a.id = $1 AND j.employer_id = $2
		FOR UPDATE OF a
	`

	var app models.OwnedApplication
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, applicationID, employerID)

	logQuery(query, []any{applicationID, employerID}, app.ID, err)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// ListByEmployer returns the applications to all jobs of the employer, newest first.
func (r *ApplicationRepository) ListByEmployer(ctx context.Context, employerID int64) ([]models.EmployerApplication, error) {
	const query = `
		SELECT a.id, a.job_id, a.seeker_id, a.resume_id, a.status, a.application_date,
		       j.title AS job_title, j.location AS job_location, j.is_remote,
		       u.email AS applicant_email,
		       p.name AS applicant_name, p.location AS applicant_location, p.education,
		       r.file_url AS resume_url
		FROM applications a
		JOIN jobs j ON j.id = a.job_id
		JOIN users u ON u.id = a.seeker_id
		JOIN resumes r ON r.id = a.resume_id
		LEFT JOIN job_seeker_profiles p ON p.user_id = a.seeker_id
		WHERE j.employer_id = $1
		ORDER BY a.application_date DESC, a.id DESC
	`

	var apps []models.EmployerApplication
	err := sqlx.SelectContext(ctx, executor(ctx, r.db, r.txGetter), &apps, query, employerID)

	logQuery(query, []any{employerID}, len(apps), err)

	if err != nil {
		return nil, err
	}
	return apps, nil
}

// UpdateStatus sets the review status of an application.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.ApplicationDB, error) {
	query := `UPDATE applications SET status = $2 WHERE id = $1 RETURNING ` + applicationColumns

	var app models.ApplicationDB
	err := sqlx.GetContext(ctx, executor(ctx, r.db, r.txGetter), &app, query, id, status)

	logQuery(query, []any{id, status}, app.ID, err)

	if err != nil {
		return nil, err
	}
	return &app, nil
}
