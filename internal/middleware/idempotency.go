package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "idempotency:"

// ResponseCache is the slice of the Redis client the middleware needs;
// redis.Client satisfies it.
type ResponseCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// Idempotency replays a cached create-order response when the storefront
// retries with the same Idempotency-Key header. The header is optional and
// the cache is TTL-bound response caching, not durable order state.
func Idempotency(cache ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil {
			c.Next()
			return
		}

		key := c.GetHeader("Idempotency-Key")
		if key == "" {
			c.Next()
			return
		}

		ctx := c.Request.Context()

		cached, err := cache.Get(ctx, keyPrefix+key).Result()
		if err == nil {
			c.Data(http.StatusOK, "application/json", []byte(cached))
			c.Abort()
			return
		}

		c.Set("idempotency_key", key)
		c.Next()
	}
}

// CacheResponse stores a successful response body for later replay.
func CacheResponse(ctx context.Context, cache ResponseCache, key string, payload any) {
	if cache == nil || key == "" {
		return
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return
	}
	cache.Set(ctx, keyPrefix+key, body, 24*time.Hour)
}
