package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/logger"
)

var errInvalidID = apperrors.Validation("Invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Errorw("failed to encode response", "error", err)
	}
}

// writeError renders err as {"error": ...}. Internal details never reach the client.
func writeError(w http.ResponseWriter, err error) {
	kind := apperrors.KindOf(err)
	if kind == apperrors.KindInternal {
		logger.Log.Errorw("internal server error", "error", err)
	}
	if encErr := apperrors.Write(w, err); encErr != nil {
		logger.Log.Errorw("failed to encode error response", "error", encErr)
	}
}

// pathID parses a positive numeric URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
