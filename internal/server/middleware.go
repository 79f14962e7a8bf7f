package server

import (
	"context"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	authdomain "github.com/nexcubelabs/nexcube/internal/auth/domain"
	"github.com/redis/go-redis/v9"
)

const sessionContextKey = "session"

// requireSession authenticates the request from the bearer token and stashes
// the session on the gin context.
func (s *Server) requireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			AbortWithError(c, authdomain.ErrUnauthorized)
			return
		}

		session, err := s.authSvc.Validate(c.Request.Context(), token)
		if err != nil {
			AbortWithError(c, err)
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	}
	return ""
}

func sessionFromContext(c *gin.Context) *authdomain.Session {
	value, ok := c.Get(sessionContextKey)
	if !ok {
		return nil
	}
	session, _ := value.(*authdomain.Session)
	return session
}

// rateLimiter is a redis fixed-window counter keyed by caller identity. The
// counter expires with the window, so abandoned keys clean themselves up.
type rateLimiter struct {
	redis  *redis.Client
	limit  int
	window time.Duration
}

func newRateLimiter(client *redis.Client, limit int, window time.Duration) *rateLimiter {
	return &rateLimiter{redis: client, limit: limit, window: window}
}

func (r *rateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, nil
	}
	if r.limit <= 0 {
		return true, nil
	}

	count, err := r.redis.Incr(ctx, "ratelimit:"+key).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := r.redis.Expire(ctx, "ratelimit:"+key, r.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(r.limit), nil
}

// rateLimitContact throttles public contact submissions per source IP. Redis
// outages fail open: losing the throttle is better than losing leads.
func (s *Server) rateLimitContact() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, err := s.contactLimiter.Allow(c.Request.Context(), "contact:"+c.ClientIP())
		if err != nil {
			s.log.Warn("contact rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			AbortWithError(c, rateLimitedError())
			return
		}
		c.Next()
	}
}
