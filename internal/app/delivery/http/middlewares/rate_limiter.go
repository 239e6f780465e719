package middlewares

import (
	"carepulse-service/internal/pkg/exceptions"
	"carepulse-service/internal/pkg/utils"
	"net"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// RateLimiter throttles clients by IP and blocks a client for blockTime once
// its bucket runs dry.
type RateLimiter struct {
	log       *zap.Logger
	limiters  map[string]*rate.Limiter
	blocked   map[string]time.Time
	mu        sync.Mutex
	burst     int
	per       time.Duration
	blockTime time.Duration
	now       func() time.Time
}

func NewRateLimiter(logger *zap.Logger, burst int, per, blockTime time.Duration) *RateLimiter {
	return &RateLimiter{
		log:       logger,
		limiters:  make(map[string]*rate.Limiter),
		blocked:   make(map[string]time.Time),
		burst:     burst,
		per:       per,
		blockTime: blockTime,
		now:       time.Now,
	}
}

func (r *RateLimiter) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		client := clientIP(req)

		if !r.allow(client) {
			utils.BuildErrorResponse(r.log, w, exceptions.ErrTooManyRequests(nil, client))
			return
		}

		next.ServeHTTP(w, req)
	})
}

func (r *RateLimiter) allow(client string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now()
	if blockedUntil, found := r.blocked[client]; found {
		if now.Before(blockedUntil) {
			return false
		}
		delete(r.blocked, client)
	}

	limiter, exists := r.limiters[client]
	if !exists {
		limiter = rate.NewLimiter(rate.Every(r.per), r.burst)
		r.limiters[client] = limiter
	}

	if !limiter.AllowN(now, 1) {
		r.blocked[client] = now.Add(r.blockTime)
		return false
	}
	return true
}

func clientIP(req *http.Request) string {
	ip, _, err := net.SplitHostPort(req.RemoteAddr)
	if err != nil {
		return req.RemoteAddr
	}
	return ip
}
