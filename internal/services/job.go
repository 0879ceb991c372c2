package services

import (
	"context"
	"strings"

	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=job.go -destination=job_mock.go -package=services

// JobWriter creates and closes jobs.
type JobWriter interface {
	Create(ctx context.Context, job models.NewJob) (*models.JobDB, error)
	Close(ctx context.Context, id, employerID int64) (bool, error)
}

// JobService manages an employer's postings.
type JobService struct {
	jobs JobWriter
}

func NewJobService(jobs JobWriter) *JobService {
	return &JobService{jobs: jobs}
}

// Create posts an open job owned by the caller.
func (s *JobService) Create(ctx context.Context, user *models.User, job models.NewJob) (*models.JobDB, error) {
	if err := requireRole(user, models.RoleEmployer, ErrEmployerOnly); err != nil {
		return nil, err
	}

	job.Title = strings.TrimSpace(job.Title)
	job.Description = strings.TrimSpace(job.Description)
	if job.Title == "" || job.Description == "" {
		return nil, ErrJobFieldsRequired
	}
	job.EmployerID = user.ID

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, internal("failed to create job", err)
	}

	logger.Log.Infow("job posted", "job_id", created.ID, "employer_id", user.ID)
	return created, nil
}

// Close stops a job from accepting applications. Closing a closed job succeeds.
func (s *JobService) Close(ctx context.Context, user *models.User, jobID int64) error {
	if err := requireRole(user, models.RoleEmployer, ErrEmployerOnly); err != nil {
		return err
	}

	ok, err := s.jobs.Close(ctx, jobID, user.ID)
	if err != nil {
		return internal("failed to close job", err)
	}
	if !ok {
		return ErrJobNotFound
	}
	return nil
}
