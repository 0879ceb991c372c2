package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gabriel-vasile/mimetype"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=resume.go -destination=resume_mock.go -package=services

// BlobStorage persists uploaded files.
type BlobStorage interface {
	Save(ctx context.Context, path string, reader io.Reader, contentType string) error
	Delete(ctx context.Context, path string) error
	GetURL(ctx context.Context, path string) (string, error)
}

// ResumeStore reads and writes resume rows.
type ResumeStore interface {
	ListByUser(ctx context.Context, userID int64) ([]models.ResumeDB, error)
	Create(ctx context.Context, userID int64, title, fileURL, fileName string) (*models.ResumeDB, error)
}

// UploadObserver records stored file sizes.
type UploadObserver interface {
	ObserveUpload(size int64)
}

// ResumeService lists and uploads a seeker's resumes.
type ResumeService struct {
	resumes  ResumeStore
	storage  BlobStorage
	observer UploadObserver
	now      func() time.Time
}

func NewResumeService(resumes ResumeStore, storage BlobStorage, observer UploadObserver) *ResumeService {
	return &ResumeService{
		resumes:  resumes,
		storage:  storage,
		observer: observer,
		now:      time.Now,
	}
}

// List returns the caller's resumes, default first.
func (s *ResumeService) List(ctx context.Context, user *models.User) ([]models.ResumeDB, error) {
	if err := requireRole(user, models.RoleJobSeeker, ErrJobSeekerOnly); err != nil {
		return nil, err
	}

	resumes, err := s.resumes.ListByUser(ctx, user.ID)
	if err != nil {
		return nil, internal("failed to list resumes", err)
	}
	return resumes, nil
}

// Upload validates and stores a PDF resume. Nothing is written unless the file passes
// validation. When the row cannot be inserted after the blob was stored, the blob is
// removed if possible and logged as orphaned otherwise.
func (s *ResumeService) Upload(ctx context.Context, user *models.User, upload models.ResumeUpload) (*models.ResumeDB, error) {
	if err := requireRole(user, models.RoleJobSeeker, ErrJobSeekerOnly); err != nil {
		return nil, err
	}
	if err := validateResume(upload); err != nil {
		return nil, err
	}

	fileName := sanitizeFileName(upload.FileName)
	path := fmt.Sprintf("resumes/%d-%d-%s", user.ID, s.now().UnixMilli(), fileName)

	if err := s.storage.Save(ctx, path, bytes.NewReader(upload.Content), models.PDFContentType); err != nil {
		return nil, internal("failed to store resume", err)
	}
	if s.observer != nil {
		s.observer.ObserveUpload(int64(len(upload.Content)))
	}

	url, err := s.storage.GetURL(ctx, path)
	if err != nil {
		s.discard(ctx, path)
		return nil, internal("failed to build resume url", err)
	}

	title := strings.TrimSpace(upload.Title)
	if title == "" {
		base := filepath.Base(upload.FileName)
		title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	resume, err := s.resumes.Create(ctx, user.ID, title, url, fileName)
	if err != nil {
		s.discard(ctx, path)
		return nil, internal("failed to save resume", err)
	}

	logger.Log.Infow("resume uploaded", "resume_id", resume.ID, "user_id", user.ID, "default", resume.IsDefault)
	return resume, nil
}

func (s *ResumeService) discard(ctx context.Context, path string) {
	if err := s.storage.Delete(ctx, path); err != nil {
		logger.Log.Errorw("orphaned resume blob", "path", path, "error", err)
	}
}

func validateResume(upload models.ResumeUpload) error {
	if upload.FileName == "" || len(upload.Content) == 0 {
		return ErrResumeRequired
	}
	if utf8.RuneCountInString(upload.FileName) > models.MaxResumeNameLength {
		return ErrFileNameLong
	}
	if utf8.RuneCountInString(strings.TrimSpace(upload.Title)) > models.MaxResumeNameLength {
		return ErrResumeTitleLong
	}
	if upload.ContentType != models.PDFContentType {
		return ErrResumeNotPDF
	}
	if upload.Size > models.MaxResumeSize || len(upload.Content) > models.MaxResumeSize {
		return ErrResumeTooLarge
	}
	// the declared type comes from the client
	if !mimetype.Detect(upload.Content).Is(models.PDFContentType) {
		return ErrResumeNotPDF
	}
	return nil
}

var unsafeFileChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

func sanitizeFileName(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeFileChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "resume.pdf"
	}
	return name
}
