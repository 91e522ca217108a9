package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/VaibhavBaliyan/hirenest/internal/shared/apperror"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// CachedResponse is what the guarded handler stores after a successful run:
// the original status code plus the serialized payload, so a replay answers
// exactly like the first attempt did.
type CachedResponse struct {
	Status int             `json:"status"`
	Data   json.RawMessage `json:"data"`
}

// Idempotency caches successful POST responses per (path, user,
// Idempotency-Key) and takes a short redis SetNX lock while the first
// request is in flight, so retried submissions do not run the operation
// twice.
func Idempotency(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		userID := c.GetString("user_id")

		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		val, err := rdb.Get(c.Request.Context(), cacheKey).Result()
		if err == nil {
			var cached CachedResponse
			if json.Unmarshal([]byte(val), &cached) == nil && cached.Status != 0 {
				c.AbortWithStatusJSON(cached.Status, gin.H{"ok": true, "data": cached.Data})
				return
			}
		}

		// Short expiry so a crashed worker releases the lock on its own.
		isNew, _ := rdb.SetNX(c.Request.Context(), lockKey, "locked", 30*time.Second).Result()
		if !isNew {
			c.AbortWithStatusJSON(http.StatusConflict, gin.H{
				"ok": false,
				"error": gin.H{
					"code":    apperror.CodeProcessing,
					"message": "Your request is still being processed, please wait",
				},
			})
			return
		}

		c.Set("idempotency_cache_key", cacheKey)
		c.Set("idempotency_lock_key", lockKey)

		c.Next()
	}
}
