package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=apply.go -destination=apply_mock.go -package=handlers

// Applier submits applications.
type Applier interface {
	Apply(ctx context.Context, user *models.User, jobID int64, resumeID *int64) (*models.ApplicationDB, error)
}

// StatusUpdater reviews applications.
type StatusUpdater interface {
	UpdateStatus(ctx context.Context, user *models.User, applicationID int64, status string) (*models.ApplicationDB, error)
}

// EmployerApplicationLister lists the applications to an employer's jobs.
type EmployerApplicationLister interface {
	ListForEmployer(ctx context.Context, user *models.User) ([]models.EmployerApplication, error)
}

// NewApplyHandler returns an HTTP handler for applying to a job.
// @Summary Apply to a job
// @Description Submits an application with one of the caller's resumes. The job must be open, the profile complete and no earlier application may exist.
// @Tags applications
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Param request body models.ApplyRequest true "Apply Request"
// @Success 201 {object} models.ApplyResponse "Application submitted successfully"
// @Failure 400 {object} models.ErrorResponse "Missing resume, closed job or incomplete profile"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only job seekers can apply"
// @Failure 404 {object} models.ErrorResponse "Job not found"
// @Failure 409 {object} models.ErrorResponse "Already applied"
// @Router /jobs/{id}/apply [post]
// @Security CookieAuth
func NewApplyHandler(svc Applier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		jobID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		var req models.ApplyRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		app, err := svc.Apply(r.Context(), middlewares.UserFromContext(r.Context()), jobID, req.ResumeID)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.ApplyResponse{
			Message:     "Application submitted successfully",
			Application: app,
		})
	}
}

// NewUpdateStatusHandler returns an HTTP handler for accepting or rejecting an application.
// @Summary Review an application
// @Description Sets an application under one of the caller's jobs to accepted or rejected and notifies the applicant
// @Tags employer
// @Accept json
// @Produce json
// @Param id path int true "Application ID"
// @Param request body models.UpdateStatusRequest true "New status"
// @Success 200 {object} models.UpdateStatusResponse
// @Failure 400 {object} models.ErrorResponse "Invalid status"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only employers can review"
// @Failure 404 {object} models.ErrorResponse "Application not found"
// @Router /employer/applications/{id}/status [patch]
// @Security CookieAuth
func NewUpdateStatusHandler(svc StatusUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		applicationID, err := pathID(r, "id")
		if err != nil {
			writeError(w, err)
			return
		}

		var req models.UpdateStatusRequest
		if err := bindJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		app, err := svc.UpdateStatus(r.Context(), middlewares.UserFromContext(r.Context()), applicationID, req.Status)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, models.UpdateStatusResponse{
			Message:     "Application status updated",
			Application: app,
		})
	}
}

// NewListEmployerApplicationsHandler returns an HTTP handler listing the applications to the caller's jobs.
// @Summary List applications to my jobs
// @Tags employer
// @Produce json
// @Success 200 {object} models.ListEmployerApplicationsResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only employers can list applications"
// @Router /employer/applications [get]
// @Security CookieAuth
func NewListEmployerApplicationsHandler(svc EmployerApplicationLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apps, err := svc.ListForEmployer(r.Context(), middlewares.UserFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if apps == nil {
			apps = []models.EmployerApplication{}
		}
		writeJSON(w, http.StatusOK, models.ListEmployerApplicationsResponse{Applications: apps})
	}
}
