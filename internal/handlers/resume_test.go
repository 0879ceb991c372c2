package handlers

import (
	"bytes"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/sbilibin2017/jobboard/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pdfBytes = []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj\n%%EOF\n")

func multipartRequest(t *testing.T, field, fileName, contentType string, content []byte, title string) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	if title != "" {
		require.NoError(t, mw.WriteField("title", title))
	}
	if field != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="`+field+`"; filename="`+fileName+`"`)
		h.Set("Content-Type", contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/seeker/resumes", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	return req.WithContext(middlewares.WithUser(req.Context(), seeker))
}

func serveUpload(req *http.Request, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Post("/seeker/resumes", h)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestUploadResumeHandler(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockResumeManager(ctrl)
		mockSvc.EXPECT().Upload(gomock.Any(), seeker, models.ResumeUpload{
			FileName:    "cv.pdf",
			Title:       "Backend",
			ContentType: models.PDFContentType,
			Size:        int64(len(pdfBytes)),
			Content:     pdfBytes,
		}).Return(&models.ResumeDB{ID: 9, Title: "Backend", FileURL: "/files/resumes/3-1-cv.pdf", FileName: "cv.pdf", IsDefault: true}, nil)

		rr := serveUpload(multipartRequest(t, "resume", "cv.pdf", models.PDFContentType, pdfBytes, "Backend"), NewUploadResumeHandler(mockSvc))

		assert.Equal(t, http.StatusCreated, rr.Code)
		resp := decodeBody(t, rr)
		assert.Equal(t, "Resume uploaded successfully", resp["message"])
		assert.Equal(t, "/files/resumes/3-1-cv.pdf", resp["url"])
		assert.Equal(t, true, resp["resume"].(map[string]any)["is_default"])
	})

	t.Run("six mebibytes rejected before the service", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		big := append(append([]byte{}, pdfBytes...), make([]byte, 6<<20)...)
		rr := serveUpload(multipartRequest(t, "resume", "big.pdf", models.PDFContentType, big, ""), NewUploadResumeHandler(NewMockResumeManager(ctrl)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "File size must be less than 5MB", decodeBody(t, rr)["error"])
	})

	t.Run("no file", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := serveUpload(multipartRequest(t, "", "", "", nil, "Only a title"), NewUploadResumeHandler(NewMockResumeManager(ctrl)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "No file uploaded", decodeBody(t, rr)["error"])
	})

	t.Run("not a pdf", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockResumeManager(ctrl)
		mockSvc.EXPECT().Upload(gomock.Any(), seeker, gomock.Any()).Return(nil, services.ErrResumeNotPDF)

		rr := serveUpload(multipartRequest(t, "resume", "cv.txt", "text/plain", []byte("hello"), ""), NewUploadResumeHandler(mockSvc))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Only PDF files are allowed", decodeBody(t, rr)["error"])
	})

	t.Run("storage failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockSvc := NewMockResumeManager(ctrl)
		mockSvc.EXPECT().Upload(gomock.Any(), seeker, gomock.Any()).Return(nil, errors.New("s3: access denied"))

		rr := serveUpload(multipartRequest(t, "resume", "cv.pdf", models.PDFContentType, pdfBytes, ""), NewUploadResumeHandler(mockSvc))

		assert.Equal(t, http.StatusInternalServerError, rr.Code)
		assert.Equal(t, "Internal server error", decodeBody(t, rr)["error"])
	})

	t.Run("not multipart", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		rr := serve(http.MethodPost, "/seeker/resumes", "/seeker/resumes", []byte(`{}`), seeker, NewUploadResumeHandler(NewMockResumeManager(ctrl)))

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestListResumesHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSvc := NewMockResumeManager(ctrl)
	mockSvc.EXPECT().List(gomock.Any(), seeker).Return([]models.ResumeDB{{ID: 2, IsDefault: true}, {ID: 5}}, nil)

	rr := serve(http.MethodGet, "/seeker/resumes", "/seeker/resumes", nil, seeker, NewListResumesHandler(mockSvc))
	assert.Equal(t, http.StatusOK, rr.Code)
	resumes := decodeBody(t, rr)["resumes"].([]any)
	require.Len(t, resumes, 2)
	assert.Equal(t, float64(2), resumes[0].(map[string]any)["id"])

	mockSvc.EXPECT().List(gomock.Any(), seeker).Return(nil, nil)
	rr = serve(http.MethodGet, "/seeker/resumes", "/seeker/resumes", nil, seeker, NewListResumesHandler(mockSvc))
	assert.JSONEq(t, `{"resumes":[]}`, rr.Body.String())
}
