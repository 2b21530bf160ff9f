package middleware

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/yourusername/trivia-questions-api/internal/domain/repository"
	"github.com/yourusername/trivia-questions-api/internal/handler/helper"
)

// RateLimitConfig содержит настройки rate limiting
type RateLimitConfig struct {
	// MaxRequests: максимальное количество запросов за Window
	MaxRequests int
	// Window: временное окно для подсчёта запросов
	Window time.Duration
	// KeyPrefix: префикс для ключей счётчиков
	KeyPrefix string
}

// RateLimiter ограничивает частоту запросов с помощью счётчиков в кеше
type RateLimiter struct {
	counters repository.CacheRepository
}

// NewRateLimiter создает новый RateLimiter
func NewRateLimiter(counters repository.CacheRepository) *RateLimiter {
	return &RateLimiter{counters: counters}
}

// LimitByIP ограничивает количество запросов с одного IP на все маршруты
func (rl *RateLimiter) LimitByIP(cfg RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		clientIP := c.ClientIP()
		key := fmt.Sprintf("%s:%s", cfg.KeyPrefix, clientIP)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		count, err := rl.counters.Increment(ctx, key, cfg.Window)
		if err != nil {
			// При ошибке Redis пропускаем запрос (fail-open), но логируем
			log.Printf("[RateLimiter] Counter error for key %s: %v. Allowing request (fail-open).", key, err)
			c.Next()
			return
		}

		remaining := cfg.MaxRequests - int(count)
		if remaining < 0 {
			remaining = 0
		}

		retryAfter := int(cfg.Window.Seconds())
		if ttl, err := rl.counters.TTL(ctx, key); err == nil && ttl > 0 {
			retryAfter = int(ttl.Seconds())
		}

		c.Header("X-RateLimit-Limit", fmt.Sprintf("%d", cfg.MaxRequests))
		c.Header("X-RateLimit-Remaining", fmt.Sprintf("%d", remaining))
		c.Header("X-RateLimit-Reset", fmt.Sprintf("%d", retryAfter))

		if int(count) > cfg.MaxRequests {
			log.Printf("[RateLimiter] Rate limit exceeded for IP=%s. Count=%d, Limit=%d",
				clientIP, count, cfg.MaxRequests)

			c.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			helper.AbortWithStatus(c, http.StatusTooManyRequests)
			return
		}

		c.Next()
	}
}
