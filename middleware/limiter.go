package middleware

import (
	"net/http"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"blogapi/handlers"
	"blogapi/utils"
)

type visitor struct {
	limiter  *rate.Limiter
	requests int
	lastSeen time.Time
}

// Limiter applies per-IP rate limiting plus a fixed delay once a client has
// made more than one request in the window. Stale visitors are dropped by a
// background sweep.
type Limiter struct {
	mu       sync.Mutex
	visitors map[string]*visitor

	perMinute int
	delay     time.Duration
}

func NewLimiter(perMinute int, delay time.Duration) *Limiter {
	if perMinute < 1 {
		perMinute = 1
	}
	l := &Limiter{
		visitors:  make(map[string]*visitor),
		perMinute: perMinute,
		delay:     delay,
	}
	go l.sweep()
	return l
}

func (l *Limiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limiter, delayed := l.visit(utils.ClientIP(r))

		if !limiter.Allow() {
			handlers.RespondError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		if delayed && l.delay > 0 {
			time.Sleep(l.delay)
		}

		next.ServeHTTP(w, r)
	})
}

// visit bumps the visitor's request count and reports, under the lock,
// whether this request is past the first and gets the speed delay.
func (l *Limiter) visit(ip string) (*rate.Limiter, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	v, ok := l.visitors[ip]
	if !ok {
		v = &visitor{
			limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(l.perMinute)), l.perMinute),
		}
		l.visitors[ip] = v
	}
	v.requests++
	v.lastSeen = time.Now()
	return v.limiter, v.requests > 1
}

func (l *Limiter) sweep() {
	for range time.Tick(time.Minute) {
		l.mu.Lock()
		for ip, v := range l.visitors {
			if time.Since(v.lastSeen) > 3*time.Minute {
				delete(l.visitors, ip)
			}
		}
		l.mu.Unlock()
	}
}
