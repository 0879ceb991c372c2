package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=job.go -destination=job_mock.go -package=handlers

// JobManager creates and closes an employer's jobs.
type JobManager interface {
	Create(ctx context.Context, user *models.User, job models.NewJob) (*models.JobDB, error)
	Close(ctx context.Context, user *models.User, jobID int64) error
}

// NewCreateJobHandler returns an HTTP handler for posting a job.
// @Summary Post a job
// @Description Creates an open job owned by the calling employer
// @Tags employer
// @Accept json
// @Produce json
// @Param request body models.CreateJobRequest true "Job"
// @Success 201 {object} models.CreateJobResponse
// @Failure 400 {object} models.ErrorResponse "Title and description are required"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only employers can post jobs"
// @Router /employer/jobs [post]
// @Security CookieAuth
func NewCreateJobHandler(svc JobManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req models.CreateJobRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		job, err := svc.Create(r.Context(), middlewares.UserFromContext(r.Context()), models.NewJob{
			Title:              req.Title,
			Description:        req.Description,
			ExperienceRequired: req.ExperienceRequired,
			Salary:             req.Salary,
			Location:           req.Location,
			Country:            req.Country,
			IsRemote:           req.IsRemote,
			JobType:            req.JobType,
			Domain:             req.Domain,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.CreateJobResponse{
			Message: "Job created successfully",
			Job:     job,
		})
	}
}

// NewCloseJobHandler returns an HTTP handler that stops a job from accepting applications.
// @Summary Close a job
// @Tags employer
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} models.MessageResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only employers can close jobs"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Router /employer/jobs/{id}/close [post]
// @Security CookieAuth
func NewCloseJobHandler(svc JobManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		if err := svc.Close(r.Context(), middlewares.UserFromContext(r.Context()), jobID); err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Job closed"})
	}
}
