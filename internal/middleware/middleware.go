package api_middleware

import (
	"net"
	"net/http"
	"sync"

	"github.com/Lutefd/currency-widget/internal/logger"
	"github.com/Lutefd/currency-widget/internal/model"
	"golang.org/x/time/rate"
)

var (
	Clients = make(map[string]*rate.Limiter)
	mu      sync.Mutex
)

// RateLimitMiddleware allows rps requests per second from each client IP,
// with bursts of the same size.
func RateLimitMiddleware(rps int) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := clientIP(r)
			if !limiterFor(ip, rps).Allow() {
				logger.Errorf(model.LogSourceHTTP, "rate limit exceeded for IP: %s", ip)
				http.Error(w, "rate limit exceeded", http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func limiterFor(ip string, rps int) *rate.Limiter {
	mu.Lock()
	defer mu.Unlock()
	limiter, ok := Clients[ip]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(rps), rps)
		Clients[ip] = limiter
	}
	return limiter
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
