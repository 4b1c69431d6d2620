package api

import (
	"net"
	"net/http"
	"sync"

	"golang.org/x/time/rate"
)

const (
	requestsPerSecond = 20
	requestBurst      = 40
)

// rateLimit hands each client address its own token bucket and answers 429
// once the bucket is empty. Limiters are kept for the life of the process;
// the client set for this service is small enough that eviction is not
// worth the bookkeeping.
func rateLimit() func(http.Handler) http.Handler {
	var mu sync.Mutex
	limiters := map[string]*rate.Limiter{}

	limiterFor := func(host string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters[host]
		if !ok {
			limiter = rate.NewLimiter(requestsPerSecond, requestBurst)
			limiters[host] = limiter
		}
		return limiter
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			host, _, err := net.SplitHostPort(r.RemoteAddr)
			if err != nil {
				host = r.RemoteAddr
			}
			if !limiterFor(host).Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
