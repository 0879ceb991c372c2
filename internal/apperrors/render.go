package apperrors

import (
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/models"
)

// Write renders err as {"error": ...} with the status of its kind.
// Only the public message is written; the returned error comes from encoding.
func Write(w http.ResponseWriter, err error) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(KindOf(err).HTTPStatus())
	return json.NewEncoder(w).Encode(models.ErrorResponse{Error: PublicMessage(err)})
}
