package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=application.go -destination=application_mock.go -package=services

// Transactor runs fn in one database transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// JobReader loads jobs.
type JobReader interface {
	GetByID(ctx context.Context, id int64) (*models.JobDB, error)
}

// ApplicationStore reads and writes applications.
type ApplicationStore interface {
	Exists(ctx context.Context, jobID, seekerID int64) (bool, error)
	Create(ctx context.Context, jobID, seekerID, resumeID int64) (*models.ApplicationDB, error)
	GetOwnedByEmployer(ctx context.Context, applicationID, employerID int64) (*models.OwnedApplication, error)
	UpdateStatus(ctx context.Context, id int64, status models.ApplicationStatus) (*models.ApplicationDB, error)
	ListByEmployer(ctx context.Context, employerID int64) ([]models.EmployerApplication, error)
}

// ProfileChecker checks seeker profiles.
type ProfileChecker interface {
	SeekerProfileExists(ctx context.Context, userID int64) (bool, error)
}

// ResumeOwnership checks that a resume belongs to a user.
type ResumeOwnership interface {
	ExistsForUser(ctx context.Context, resumeID, userID int64) (bool, error)
}

// NotificationWriter stores notifications.
type NotificationWriter interface {
	Create(ctx context.Context, n *models.NotificationDB) error
}

// EventSink receives events of committed workflows.
type EventSink interface {
	Publish(ctx context.Context, event models.Event)
}

// WorkflowObserver counts workflow outcomes.
type WorkflowObserver interface {
	ObserveWorkflow(op, result string)
}

// ApplicationService implements applying to jobs and reviewing applications.
type ApplicationService struct {
	tx            Transactor
	jobs          JobReader
	applications  ApplicationStore
	profiles      ProfileChecker
	resumes       ResumeOwnership
	notifications NotificationWriter
	events        EventSink
	observer      WorkflowObserver
}

// NewApplicationService creates a new ApplicationService.
func NewApplicationService(
	tx Transactor,
	jobs JobReader,
	applications ApplicationStore,
	profiles ProfileChecker,
	resumes ResumeOwnership,
	notifications NotificationWriter,
	events EventSink,
	observer WorkflowObserver,
) *ApplicationService {
	return &ApplicationService{
		tx:            tx,
		jobs:          jobs,
		applications:  applications,
		profiles:      profiles,
		resumes:       resumes,
		notifications: notifications,
		events:        events,
		observer:      observer,
	}
}

// Apply submits the caller's application to a job.
//
// Checks run in order and the first failing one is returned: seeker role, resume selected,
// job exists, job open, not applied yet, profile complete, resume owned by the caller.
// The application and the employer notification are written in one transaction; the
// (job, seeker) unique constraint turns a concurrent duplicate into ErrAlreadyApplied.
func (s *ApplicationService) Apply(ctx context.Context, user *models.User, jobID int64, resumeID *int64) (app *models.ApplicationDB, err error) {
	defer func() { observe(s.observer, "apply", err) }()

	if err := requireRole(user, models.RoleJobSeeker, ErrJobSeekerOnly); err != nil {
		return nil, err
	}
	if resumeID == nil || *resumeID <= 0 {
		return nil, ErrSelectResume
	}

	var job *models.JobDB
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		job, err = s.jobs.GetByID(ctx, jobID)
		if err != nil {
			return internal("failed to get job", err)
		}
		if job == nil {
			return ErrJobNotFound
		}
		if !job.IsOpen {
			return ErrJobClosed
		}

		applied, err := s.applications.Exists(ctx, jobID, user.ID)
		if err != nil {
			return internal("failed to check existing application", err)
		}
		if applied {
			return ErrAlreadyApplied
		}

		hasProfile, err := s.profiles.SeekerProfileExists(ctx, user.ID)
		if err != nil {
			return internal("failed to check seeker profile", err)
		}
		if !hasProfile {
			return ErrProfileIncomplete
		}

		owned, err := s.resumes.ExistsForUser(ctx, *resumeID, user.ID)
		if err != nil {
			return internal("failed to check resume ownership", err)
		}
		if !owned {
			return ErrResumeNotFound
		}

		app, err = s.applications.Create(ctx, jobID, user.ID, *resumeID)
		if errors.Is(err, apperrors.ErrDuplicate) {
			return ErrAlreadyApplied
		}
		if err != nil {
			return internal("failed to create application", err)
		}

		err = s.notifications.Create(ctx, &models.NotificationDB{
			UserID:               job.EmployerID,
			Title:                "New Application",
			Message:              fmt.Sprintf("A candidate has applied for \"%s\".", job.Title),
			Type:                 models.NotificationInfo,
			RelatedApplicationID: &app.ID,
		})
		if err != nil {
			return internal("failed to notify employer", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("application submitted", "application_id", app.ID, "job_id", jobID, "seeker_id", user.ID)

	s.events.Publish(ctx, models.Event{
		Type:          models.EventApplicationSubmitted,
		UserID:        user.ID,
		ApplicationID: app.ID,
		JobID:         jobID,
		Status:        string(app.Status),
	})

	return app, nil
}

// UpdateStatus lets the employer owning the job accept or reject an application.
func (s *ApplicationService) UpdateStatus(ctx context.Context, user *models.User, applicationID int64, status string) (app *models.ApplicationDB, err error) {
	defer func() { observe(s.observer, "review", err) }()

	if err := requireRole(user, models.RoleEmployer, ErrEmployerOnly); err != nil {
		return nil, err
	}

	newStatus, err := models.ParseReviewStatus(status)
	if err != nil {
		return nil, ErrInvalidStatus
	}

	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		owned, err := s.applications.GetOwnedByEmployer(ctx, applicationID, user.ID)
		if err != nil {
			return internal("failed to get application", err)
		}
		if owned == nil {
			return ErrApplicationNotFound
		}

		app, err = s.applications.UpdateStatus(ctx, applicationID, newStatus)
		if err != nil {
			return internal("failed to update application status", err)
		}

		n := &models.NotificationDB{
			UserID:               owned.SeekerID,
			Title:                "Application Update",
			RelatedApplicationID: &owned.ID,
		}
		if newStatus == models.StatusAccepted {
			n.Type = models.NotificationSuccess
			n.Message = fmt.Sprintf("Congratulations! Your application for \"%s\" has been accepted.", owned.JobTitle)
		} else {
			n.Type = models.NotificationWarning
			n.Message = fmt.Sprintf("Your application for \"%s\" was not selected.", owned.JobTitle)
		}

		if err := s.notifications.Create(ctx, n); err != nil {
			return internal("failed to notify seeker", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.events.Publish(ctx, models.Event{
		Type:          models.EventApplicationStatusChanged,
		UserID:        user.ID,
		ApplicationID: app.ID,
		JobID:         app.JobID,
		Status:        string(app.Status),
	})

	return app, nil
}

// ListForEmployer returns the applications to the caller's jobs, newest first.
func (s *ApplicationService) ListForEmployer(ctx context.Context, user *models.User) ([]models.EmployerApplication, error) {
	if err := requireRole(user, models.RoleEmployer, ErrEmployerOnly); err != nil {
		return nil, err
	}

	apps, err := s.applications.ListByEmployer(ctx, user.ID)
	if err != nil {
		return nil, internal("failed to list applications", err)
	}
	return apps, nil
}

// internal logs a datastore failure and hides it behind a generic error.
func internal(msg string, err error) error {
	logger.Log.Errorw(msg, "error", err)
	return apperrors.Internal(err)
}

func observe(observer WorkflowObserver, op string, err error) {
	if observer == nil {
		return
	}
	result := "ok"
	if err != nil {
		result = apperrors.KindOf(err).String()
	}
	observer.ObserveWorkflow(op, result)
}
