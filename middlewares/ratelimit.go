package middlewares

import (
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"matsal-partner-api/pkg/resp"
)

// limiterTTL bounds the per-IP map: a client idle this long gets its
// limiter dropped on the next sweep.
const limiterTTL = 10 * time.Minute

type ipEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type ipLimiter struct {
	mu        sync.Mutex
	ips       map[string]*ipEntry
	rate      rate.Limit
	burst     int
	ttl       time.Duration
	lastSweep time.Time
	now       func() time.Time
}

func newIPLimiter(r rate.Limit, burst int) *ipLimiter {
	return &ipLimiter{
		ips:   make(map[string]*ipEntry),
		rate:  r,
		burst: burst,
		ttl:   limiterTTL,
		now:   time.Now,
	}
}

func (rl *ipLimiter) get(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := rl.now()
	if now.Sub(rl.lastSweep) >= rl.ttl {
		rl.sweepLocked(now)
	}

	if e, ok := rl.ips[ip]; ok {
		e.lastSeen = now
		return e.limiter
	}
	e := &ipEntry{limiter: rate.NewLimiter(rl.rate, rl.burst), lastSeen: now}
	rl.ips[ip] = e
	return e.limiter
}

func (rl *ipLimiter) sweepLocked(now time.Time) {
	rl.lastSweep = now
	for ip, e := range rl.ips {
		if now.Sub(e.lastSeen) >= rl.ttl {
			delete(rl.ips, ip)
		}
	}
}

// RateLimit throttles per client IP. Used on the login route to slow
// credential stuffing.
func RateLimit(r rate.Limit, burst int) gin.HandlerFunc {
	rl := newIPLimiter(r, burst)

	return func(c *gin.Context) {
		if !rl.get(c.ClientIP()).Allow() {
			resp.TooManyRequests(c, "rate limit exceeded")
			c.Abort()
			return
		}
		c.Next()
	}
}
