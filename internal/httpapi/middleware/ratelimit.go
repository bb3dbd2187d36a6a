package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Entries idle longer than this are dropped on the next sweep, so the
// per-IP map cannot grow for the whole process lifetime.
const limiterIdleTTL = 10 * time.Minute

type ipLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

type rateLimiters struct {
	mu        sync.Mutex
	perIP     map[string]*ipLimiter
	limit     rate.Limit
	burst     int
	lastSweep time.Time
}

func newRateLimiters(perMinute, burst int) *rateLimiters {
	return &rateLimiters{
		perIP: make(map[string]*ipLimiter),
		limit: rate.Every(time.Minute / time.Duration(perMinute)),
		burst: burst,
	}
}

func (l *rateLimiters) get(ip string, now time.Time) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	if now.Sub(l.lastSweep) >= limiterIdleTTL {
		l.sweep(now)
		l.lastSweep = now
	}

	entry, ok := l.perIP[ip]
	if !ok {
		entry = &ipLimiter{limiter: rate.NewLimiter(l.limit, l.burst)}
		l.perIP[ip] = entry
	}
	entry.lastSeen = now
	return entry.limiter
}

// sweep drops entries idle past the TTL. Caller holds the lock.
func (l *rateLimiters) sweep(now time.Time) {
	for ip, entry := range l.perIP {
		if now.Sub(entry.lastSeen) > limiterIdleTTL {
			delete(l.perIP, ip)
		}
	}
}

// RateLimit applies a per-client-IP token bucket. Used on the login and
// register endpoints to slow down credential stuffing.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	limiters := newRateLimiters(perMinute, burst)

	return func(c *gin.Context) {
		if !limiters.get(c.ClientIP(), time.Now()).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			c.Abort()
			return
		}

		c.Next()
	}
}
