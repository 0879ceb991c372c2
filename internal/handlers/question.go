package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=question.go -destination=question_mock.go -package=handlers

// QuestionAsker records employer questions.
type QuestionAsker interface {
	AskQuestion(ctx context.Context, user *models.User, applicationID int64, questionText string) (*models.EmployerQuestionDB, error)
}

// NewAskQuestionHandler returns an HTTP handler for asking an applicant a question.
// @Summary Ask an applicant a question
// @Description Stores a question on an application under one of the caller's jobs and notifies the applicant.
// @Description Applications of other employers are reported as not found.
// @Tags employer
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body models.AskQuestionRequest true "Question"
// @Success 201 {object} models.AskQuestionResponse
// @Failure 400 {object} models.ErrorResponse "Question text is required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only employers can ask questions"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /employer/applications/{id}/questions [post]
// @Security CookieAuth
func NewAskQuestionHandler(svc QuestionAsker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		var req models.AskQuestionRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		question, err := svc.AskQuestion(r.Context(), middlewares.UserFromContext(r.Context()), applicationID, req.QuestionText)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.AskQuestionResponse{
			Message:  "Question sent successfully",
			Question: question,
		})
	}
}
