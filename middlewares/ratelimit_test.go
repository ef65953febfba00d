package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func TestRateLimitThrottlesPerIP(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/login", RateLimit(rate.Limit(0), 2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	hit := func() int {
		req := httptest.NewRequest(http.MethodPost, "/login", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusOK, hit())
	assert.Equal(t, http.StatusTooManyRequests, hit())
}

func TestIPLimiterEvictsIdleClients(t *testing.T) {
	rl := newIPLimiter(rate.Limit(1), 1)
	clock := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return clock }

	rl.get("10.0.0.1")
	rl.get("10.0.0.2")
	assert.Len(t, rl.ips, 2)

	// one client keeps talking, the other goes quiet
	clock = clock.Add(rl.ttl / 2)
	rl.get("10.0.0.1")

	clock = clock.Add(3 * rl.ttl / 4)
	rl.get("10.0.0.3")

	assert.Contains(t, rl.ips, "10.0.0.1")
	assert.Contains(t, rl.ips, "10.0.0.3")
	assert.NotContains(t, rl.ips, "10.0.0.2")
}
