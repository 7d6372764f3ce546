package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/jigardalal/siteninja-backend-sub001/internal/api/dto"
	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/utils"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/logger"
)

type RateLimitMiddleware struct {
	redis  *redis.Client
	config *config.Config
	logger *logger.Logger
}

func NewRateLimitMiddleware(redis *redis.Client, config *config.Config, logger *logger.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		redis:  redis,
		config: config,
		logger: logger,
	}
}

// ActorRateLimit limits authenticated callers to a fixed window of
// requests per minute, keyed by actor id.
func (m *RateLimitMiddleware) ActorRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		if claims, exists := c.Get(string(utils.ClaimsKey)); exists {
			ctx = context.WithValue(ctx, utils.ClaimsKey, claims)
		}

		actorID, err := utils.GetUserIDFromContext(ctx)
		if err != nil {
			c.JSON(http.StatusUnauthorized, dto.NewError("Authentication required for rate limiting"))
			c.Abort()
			return
		}

		key := fmt.Sprintf("rate_limit:actor:%s", actorID)
		m.enforce(c, key, m.config.DefaultRateLimit)
	}
}

// IPRateLimit limits unauthenticated traffic per client IP.
func (m *RateLimitMiddleware) IPRateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("rate_limit:ip:%s", c.ClientIP())
		m.enforce(c, key, m.config.GlobalRateLimit)
	}
}

// enforce runs a fixed one-minute window counter in Redis. On Redis
// failure the request is allowed through (fail open).
func (m *RateLimitMiddleware) enforce(c *gin.Context, key string, limit int) {
	ctx := c.Request.Context()

	current, err := m.redis.Get(ctx, key).Int()
	if err != nil && err != redis.Nil {
		m.logger.Error("Redis error in rate limiting", err)
		c.Next()
		return
	}

	reset := strconv.FormatInt(time.Now().Add(time.Minute).Unix(), 10)
	if current >= limit {
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", "0")
		c.Header("X-RateLimit-Reset", reset)
		c.JSON(http.StatusTooManyRequests, dto.NewError("Rate limit exceeded"))
		c.Abort()
		return
	}

	pipe := m.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		m.logger.Error("Redis pipeline error in rate limiting", err)
	}

	remaining := limit - (current + 1)
	if remaining < 0 {
		remaining = 0
	}

	c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
	c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
	c.Header("X-RateLimit-Reset", reset)

	c.Next()
}
