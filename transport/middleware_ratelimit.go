package transport

import (
	"fmt"
	"net/http"
	"time"

	"github.com/okozak/contacts-api/cmd/config"
	"github.com/okozak/contacts-api/constant"
	redisrepo "github.com/okozak/contacts-api/repository/redis"
	utilsContext "github.com/okozak/contacts-api/utils/context"
	"github.com/okozak/contacts-api/utils/errors"
	"github.com/okozak/contacts-api/utils/logger"
	"go.uber.org/zap"
)

// RateLimiter enforces a per-user fixed-window request limit backed by the
// Redis counter. It fails open when the counter is unavailable; losing rate
// limiting is preferable to refusing every request.
type RateLimiter struct {
	redisRepo redisrepo.Repository
	requests  int
	window    time.Duration
}

func NewRateLimiter(cfg *config.Config, redisRepo redisrepo.Repository) *RateLimiter {
	return &RateLimiter{
		redisRepo: redisRepo,
		requests:  cfg.RateLimit.Requests,
		window:    cfg.RateLimit.Window,
	}
}

// Wrap limits the handler to the configured number of requests per window
// for each authenticated user.
func (l *RateLimiter) Wrap(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := utilsContext.GetUserID(r.Context())
		if !ok {
			writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
			return
		}

		key := fmt.Sprintf("user:%d:%s", userID, r.URL.Path)
		count, err := l.redisRepo.Hit(r.Context(), key, l.window)
		if err != nil {
			logger.Warn("rate limit counter unavailable", zap.String("error", err.Error()))
			next(w, r)
			return
		}
		if count > int64(l.requests) {
			writeError(w, errors.SetCustomError(constant.ErrTooManyRequests))
			return
		}

		next(w, r)
	}
}
