package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestIdempotency(t *testing.T) {
	gin.SetMode(gin.TestMode)

	const cacheKey = "idemp:/jobs/:id/apply:user-1:key-1"

	t.Run("Replay Keeps Original Status", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		cached, _ := json.Marshal(CachedResponse{
			Status: http.StatusCreated,
			Data:   json.RawMessage(`{"id":"app-1","status":"applied"}`),
		})
		mock.ExpectGet(cacheKey).SetVal(string(cached))

		r := gin.New()
		r.POST("/jobs/:id/apply",
			func(c *gin.Context) { c.Set("user_id", "user-1") },
			Idempotency(rdb),
			func(c *gin.Context) { t.Fatal("handler must not run on a replay") },
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs/j1/apply", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), `"id":"app-1"`)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("In-Flight Duplicate Gets Processing Conflict", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(false)

		r := gin.New()
		r.POST("/jobs/:id/apply",
			func(c *gin.Context) { c.Set("user_id", "user-1") },
			Idempotency(rdb),
			func(c *gin.Context) { t.Fatal("handler must not run while the first attempt holds the lock") },
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs/j1/apply", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "PROCESSING")
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("First Attempt Passes Through With Keys Set", func(t *testing.T) {
		rdb, mock := redismock.NewClientMock()

		mock.ExpectGet(cacheKey).RedisNil()
		mock.ExpectSetNX(cacheKey+":lock", "locked", 30*time.Second).SetVal(true)

		var gotCacheKey string
		r := gin.New()
		r.POST("/jobs/:id/apply",
			func(c *gin.Context) { c.Set("user_id", "user-1") },
			Idempotency(rdb),
			func(c *gin.Context) {
				gotCacheKey = c.GetString("idempotency_cache_key")
				c.JSON(http.StatusCreated, gin.H{"ok": true})
			},
		)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/jobs/j1/apply", strings.NewReader(`{}`))
		req.Header.Set("Idempotency-Key", "key-1")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, cacheKey, gotCacheKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
