package middlewares

import (
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
)

var (
	errUnauthorized = apperrors.Unauthenticated("Unauthorized")
	errForbidden    = apperrors.Forbidden("Forbidden")
)

// Authorize checks a resolved caller against the allowed roles.
// No roles means any authenticated caller is allowed.
func Authorize(user *models.User, roles ...models.Role) error {
	if user == nil {
		return errUnauthorized
	}
	if len(roles) == 0 {
		return nil
	}
	for _, role := range roles {
		if user.Role == role {
			return nil
		}
	}
	return errForbidden
}

// RequireAuth rejects anonymous callers with 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := Authorize(UserFromContext(r.Context())); err != nil {
			deny(w, err)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireRole rejects anonymous callers with 401 and callers of another role with 403.
func RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := Authorize(UserFromContext(r.Context()), roles...); err != nil {
				deny(w, err)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func deny(w http.ResponseWriter, err error) {
	if encErr := apperrors.Write(w, err); encErr != nil {
		logger.Log.Errorw("failed to encode error response", "error", encErr)
	}
}
