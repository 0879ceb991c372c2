package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/jobboard/internal/middlewares"
	"github.com/sbilibin2017/jobboard/internal/models"
	"github.com/stretchr/testify/require"
)

var (
	seeker   = &models.User{ID: 3, Email: "sam@example.com", Role: models.RoleJobSeeker, IsPaid: true}
	employer = &models.User{ID: 1, Email: "erin@example.com", Role: models.RoleEmployer, IsPaid: true}
)

// serve routes a request through a chi router so URL params resolve.
func serve(method, pattern, target string, body []byte, user *models.User, h http.HandlerFunc) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	r.Method(method, pattern, h)

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req = req.WithContext(middlewares.WithUser(req.Context(), user))
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return b
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp
}
