package middlewares

import (
	"context"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/sbilibin2017/jobboard/internal/apperrors"
	"github.com/sbilibin2017/jobboard/internal/logger"
)

var errTooManyRequests = apperrors.New(apperrors.KindRateLimited, "Too many requests")

//go:generate mockgen -source=ratelimit.go -destination=ratelimit_mock.go -package=middlewares

// RateCounter increments a fixed window counter and reports the time left in the window.
type RateCounter interface {
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimitObserver counts rejected requests.
type RateLimitObserver interface {
	ObserveRateLimited(scope string)
}

// RateLimitMiddleware allows at most limit requests per client IP in each window.
// Counter failures let the request through.
func RateLimitMiddleware(counter RateCounter, observer RateLimitObserver, scope string, limit int64, window time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			key := "ratelimit:" + scope + ":" + clientIP(r)

			count, ttl, err := counter.Incr(r.Context(), key, window)
			if err != nil {
				logger.Log.Errorw("rate limit counter unavailable", "key", key, "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if count > limit {
				if observer != nil {
					observer.ObserveRateLimited(scope)
				}
				retry := int(ttl.Round(time.Second) / time.Second)
				if retry < 1 {
					retry = 1
				}
				w.Header().Set("Retry-After", strconv.Itoa(retry))
				deny(w, errTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
