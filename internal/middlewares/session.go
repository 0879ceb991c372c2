package middlewares

import (
	"context"
	"errors"
	"net/http"

	"github.com/sbilibin2017/jobboard/internal/jwt"
	"github.com/sbilibin2017/jobboard/internal/logger"
	"github.com/sbilibin2017/jobboard/internal/models"
)

//go:generate mockgen -source=session.go -destination=session_mock.go -package=middlewares

// TokenVerifier reads and verifies the session token of a request.
type TokenVerifier interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Verify(ctx context.Context, tokenString string) (*jwt.Claims, error)
}

// UserGetter loads the current state of a user.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

type userContextKey struct{}

// WithUser stores the resolved caller in the context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}

// UserFromContext returns the resolved caller or nil for anonymous requests.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey{}).(*models.User)
	return user
}

// SessionMiddleware resolves the caller from the auth-token cookie.
// It never rejects a request: a missing, invalid or stale session leaves the caller anonymous
// and routes that need a user must be guarded with RequireAuth or RequireRole.
func SessionMiddleware(tokens TokenVerifier, users UserGetter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if user := resolveUser(ctx, r, tokens, users); user != nil {
				ctx = WithUser(ctx, user)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func resolveUser(ctx context.Context, r *http.Request, tokens TokenVerifier, users UserGetter) *models.User {
	tokenString, err := tokens.GetTokenFromRequest(ctx, r)
	if err != nil {
		return nil
	}

	claims, err := tokens.Verify(ctx, tokenString)
	if err != nil {
		if !errors.Is(err, jwt.ErrInvalidToken) {
			logger.Log.Errorw("failed to verify session token", "err", err)
		}
		return nil
	}

	// role and payment flags are re-read rather than trusted from the token
	user, err := users.GetByID(ctx, claims.UserID)
	if err != nil {
		logger.Log.Errorw("failed to load session user", "user_id", claims.UserID, "err", err)
		return nil
	}
	if user == nil {
		logger.Log.Infow("session user no longer exists", "user_id", claims.UserID)
		return nil
	}

	return user.ToUser()
}
