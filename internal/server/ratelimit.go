package server

import (
	"net"
	"net/http"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// clientLimiter enforces a per-client request ceiling on /analyze.
// One token-bucket limiter per remote address, kept in an expiring
// cache so idle clients don't accumulate.
type clientLimiter struct {
	limiters *gocache.Cache
	limit    rate.Limit
	burst    int
}

func newClientLimiter(requestsPerMinute int) *clientLimiter {
	if requestsPerMinute <= 0 {
		requestsPerMinute = 10
	}
	return &clientLimiter{
		limiters: gocache.New(10*time.Minute, 15*time.Minute),
		limit:    rate.Limit(float64(requestsPerMinute) / 60.0),
		burst:    requestsPerMinute,
	}
}

func (l *clientLimiter) allow(client string) bool {
	if lim, found := l.limiters.Get(client); found {
		return lim.(*rate.Limiter).Allow()
	}

	lim := rate.NewLimiter(l.limit, l.burst)
	l.limiters.SetDefault(client, lim)
	return lim.Allow()
}

func (l *clientLimiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		client, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			client = r.RemoteAddr
		}

		if !l.allow(client) {
			respondError(w, http.StatusTooManyRequests, "rate limit exceeded")
			return
		}

		next.ServeHTTP(w, r)
	})
}
