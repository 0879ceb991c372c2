package storage

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStorage(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := NewLocalStorage(Config{BasePath: dir, BaseURL: "http://localhost:8080/files/"})
	require.NoError(t, err)

	t.Run("Save", func(t *testing.T) {
		err := s.Save(ctx, "resumes/1-cv.pdf", bytes.NewReader([]byte("%PDF-1.4")), "application/pdf")
		require.NoError(t, err)

		data, err := os.ReadFile(filepath.Join(dir, "resumes", "1-cv.pdf"))
		require.NoError(t, err)
		assert.Equal(t, "%PDF-1.4", string(data))
	})

	t.Run("GetURL", func(t *testing.T) {
		url, err := s.GetURL(ctx, "resumes/1-cv.pdf")
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:8080/files/resumes/1-cv.pdf", url)
	})

	t.Run("Delete", func(t *testing.T) {
		require.NoError(t, s.Delete(ctx, "resumes/1-cv.pdf"))
		_, err := os.Stat(filepath.Join(dir, "resumes", "1-cv.pdf"))
		assert.True(t, os.IsNotExist(err))

		// deleting a missing file is not an error
		assert.NoError(t, s.Delete(ctx, "resumes/1-cv.pdf"))
	})

	t.Run("RejectsEscapingPath", func(t *testing.T) {
		err := s.Save(ctx, "../outside.pdf", bytes.NewReader(nil), "application/pdf")
		assert.Error(t, err)
	})
}

func TestLocalStorage_DefaultURL(t *testing.T) {
	s, err := NewLocalStorage(Config{BasePath: t.TempDir()})
	require.NoError(t, err)

	url, err := s.GetURL(context.Background(), "resumes/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "/files/resumes/a.pdf", url)
}

func TestNewStorage(t *testing.T) {
	s, err := NewStorage(Config{Type: "local", BasePath: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &LocalStorage{}, s)

	_, err = NewStorage(Config{Type: "s3"})
	assert.Error(t, err)

	s, err = NewStorage(Config{Type: "s3", Bucket: "resumes", Region: "us-east-1", Endpoint: "http://minio:9000"})
	require.NoError(t, err)
	url, err := s.GetURL(context.Background(), "resumes/a.pdf")
	require.NoError(t, err)
	assert.Equal(t, "http://minio:9000/resumes/resumes/a.pdf", url)

	_, err = NewStorage(Config{Type: "ftp"})
	assert.Error(t, err)
}

// s3Server records objects written through the S3 REST API.
type s3Server struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
}

func (f *s3Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	switch r.Method {
	case http.MethodPut:
		data, _ := io.ReadAll(r.Body)
		f.objects[r.URL.Path] = data
		f.types[r.URL.Path] = r.Header.Get("Content-Type")
		w.Header().Set("ETag", `"etag"`)
		w.WriteHeader(http.StatusOK)
	case http.MethodDelete:
		delete(f.objects, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

func TestS3Storage(t *testing.T) {
	ctx := context.Background()
	backend := &s3Server{objects: map[string][]byte{}, types: map[string]string{}}
	srv := httptest.NewServer(backend)
	defer srv.Close()

	s, err := NewS3Storage(Config{
		Bucket:    "bucket",
		Region:    "us-east-1",
		Endpoint:  srv.URL,
		AccessKey: "key",
		SecretKey: "secret",
		BaseURL:   "https://cdn.example.com",
	})
	require.NoError(t, err)

	require.NoError(t, s.Save(ctx, "resumes/7-cv.pdf", bytes.NewReader([]byte("%PDF-1.7")), "application/pdf"))
	assert.Equal(t, []byte("%PDF-1.7"), backend.objects["/bucket/resumes/7-cv.pdf"])
	assert.Equal(t, "application/pdf", backend.types["/bucket/resumes/7-cv.pdf"])

	url, err := s.GetURL(ctx, "resumes/7-cv.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/resumes/7-cv.pdf", url)

	require.NoError(t, s.Delete(ctx, "resumes/7-cv.pdf"))
	assert.Empty(t, backend.objects)
}
