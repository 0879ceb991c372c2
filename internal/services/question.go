package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=question.go -destination=question_mock.go -package=services

// OwnedApplicationReader loads an application only when the employer owns its job.
type OwnedApplicationReader interface {
	GetOwnedByEmployer(ctx context.Context, applicationID, employerID int64) (*models.OwnedApplication, error)
}

// QuestionWriter stores employer questions.
type QuestionWriter interface {
	Create(ctx context.Context, applicationID, employerID int64, text string) (*models.EmployerQuestionDB, error)
}

// QuestionService lets employers ask applicants questions.
type QuestionService struct {
	tx            Transactor
	applications  OwnedApplicationReader
	questions     QuestionWriter
	notifications NotificationWriter
	events        EventSink
	observer      WorkflowObserver
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(
	tx Transactor,
	applications OwnedApplicationReader,
	questions QuestionWriter,
	notifications NotificationWriter,
	events EventSink,
	observer WorkflowObserver,
) *QuestionService {
	return &QuestionService{
		tx:            tx,
		applications:  applications,
		questions:     questions,
		notifications: notifications,
		events:        events,
		observer:      observer,
	}
}

// AskQuestion records a question on an application and notifies its seeker.
// An application under another employer's job is reported as not found.
func (s *QuestionService) AskQuestion(ctx context.Context, user *models.User, applicationID int64, questionText string) (question *models.EmployerQuestionDB, err error) {
	defer func() { observe(s.observer, "ask_question", err) }()

	if err := requireRole(user, models.RoleEmployer, ErrEmployerOnly); err != nil {
		return nil, err
	}

	text := strings.TrimSpace(questionText)
	if text == "" {
		return nil, ErrQuestionRequired
	}

	var owned *models.OwnedApplication
	err = s.tx.WithinTx(ctx, func(ctx context.Context) error {
		var err error

		owned, err = s.applications.GetOwnedByEmployer(ctx, applicationID, user.ID)
		if err != nil {
			return internal("failed to get application", err)
		}
		if owned == nil {
			return ErrApplicationNotFound
		}

		question, err = s.questions.Create(ctx, applicationID, user.ID, text)
		if err != nil {
			return internal("failed to save question", err)
		}

		err = s.notifications.Create(ctx, &models.NotificationDB{
			UserID: owned.SeekerID,
			Title:  "New Question from Employer",
			Message: fmt.Sprintf(
				"The employer for \"%s\" has asked you a new question. Please check your applications.",
				owned.JobTitle,
			),
			Type:                 models.NotificationInfo,
			RelatedApplicationID: &owned.ID,
		})
		if err != nil {
			return internal("failed to notify seeker", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Log.Infow("question asked", "application_id", applicationID, "employer_id", user.ID)

	s.events.Publish(ctx, models.Event{
		Type:          models.EventQuestionAsked,
		UserID:        user.ID,
		ApplicationID: applicationID,
		JobID:         owned.JobID,
	})

	return question, nil
}
