package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
)

//go:generate mockgen -source=resume.go -destination=resume_mock.go -package=handlers

// maxUploadBody bounds the whole multipart body, form fields included.
const maxUploadBody = models.MaxResumeSize + 512<<10

// ResumeManager lists and uploads the caller's resumes.
type ResumeManager interface {
	List(ctx context.Context, user *models.User) ([]models.ResumeDB, error)
	Upload(ctx context.Context, user *models.User, upload models.ResumeUpload) (*models.ResumeDB, error)
}

// NewListResumesHandler returns an HTTP handler listing the caller's resumes.
// @Summary List resumes
// @Description Default resume first, then newest first
// @Tags resumes
// @Produce json
// @Success 200 {object} models.ListResumesResponse
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only job seekers have resumes"
// @Router /seeker/resumes [get]
// @Security CookieAuth
func NewListResumesHandler(svc ResumeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resumes, err := svc.List(r.Context(), middlewares.UserFromContext(r.Context()))
		if err != nil {
			writeError(w, err)
			return
		}
		if resumes == nil {
			resumes = []models.ResumeDB{}
		}
		writeJSON(w, http.StatusOK, models.ListResumesResponse{Resumes: resumes})
	}
}

// NewUploadResumeHandler returns an HTTP handler for uploading a PDF resume.
// @Summary Upload a resume
// @Description Accepts a PDF of at most 5MB. The first resume of a seeker becomes the default.
// @Tags resumes
// @Accept multipart/form-data
// @Produce json
// @Param resume formData file true "PDF file"
// @Param title formData string false "Title, defaults to the file name"
// @Success 201 {object} models.UploadResumeResponse
// @Failure 400 {object} models.ErrorResponse "No file, not a PDF or too large"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Only job seekers can upload resumes"
// @Router /seeker/resumes [post]
// @Security CookieAuth
func NewUploadResumeHandler(svc ResumeManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.ContentLength > maxUploadBody {
			writeError(w, services.ErrResumeTooLarge)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxUploadBody)
		if err := r.ParseMultipartForm(maxUploadBody); err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeError(w, services.ErrResumeTooLarge)
				return
			}
			logger.Log.Infow("invalid multipart form", "error", err)
			writeError(w, services.ErrResumeRequired)
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("resume")
		if err != nil {
			writeError(w, services.ErrResumeRequired)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, models.MaxResumeSize+1))
		if err != nil {
			writeError(w, err)
			return
		}

		resume, err := svc.Upload(r.Context(), middlewares.UserFromContext(r.Context()), models.ResumeUpload{
			FileName:    header.Filename,
			Title:       r.FormValue("title"),
			ContentType: header.Header.Get("Content-Type"),
			Size:        header.Size,
			Content:     content,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, models.UploadResumeResponse{
			Message: "Resume uploaded successfully",
			URL:     resume.FileURL,
			Resume:  resume,
		})
	}
}
