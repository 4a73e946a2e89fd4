package middleware

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"
)

func TestLimiterReturns429OverLimit(t *testing.T) {
	limiter := NewLimiter(3, 0)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	statuses := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		r := httptest.NewRequest("GET", "/api/posts", nil)
		r.RemoteAddr = "1.2.3.4:1111"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		statuses = append(statuses, w.Code)
	}

	for i := 0; i < 3; i++ {
		if statuses[i] != http.StatusOK {
			t.Errorf("request %d: status = %d, want 200", i, statuses[i])
		}
	}
	for i := 3; i < 5; i++ {
		if statuses[i] != http.StatusTooManyRequests {
			t.Errorf("request %d: status = %d, want 429", i, statuses[i])
		}
	}
}

func TestLimiterConcurrentRequestsSameClient(t *testing.T) {
	limiter := NewLimiter(1000, time.Microsecond)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r := httptest.NewRequest("GET", "/api/posts", nil)
			r.RemoteAddr = "1.2.3.4:1111"
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, r)
			if w.Code != http.StatusOK {
				t.Errorf("status = %d, want 200", w.Code)
			}
		}()
	}
	wg.Wait()
}

func TestLimiterClampsZeroRate(t *testing.T) {
	limiter := NewLimiter(0, 0)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	r := httptest.NewRequest("GET", "/api/posts", nil)
	r.RemoteAddr = "1.2.3.4:1111"
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, r)
	if w.Code != http.StatusOK {
		t.Errorf("first request with zero configured rate: status = %d, want 200", w.Code)
	}
}

func TestLimiterTracksClientsSeparately(t *testing.T) {
	limiter := NewLimiter(1, 0)
	handler := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for _, addr := range []string{"1.2.3.4:1111", "5.6.7.8:2222"} {
		r := httptest.NewRequest("GET", "/api/posts", nil)
		r.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, r)
		if w.Code != http.StatusOK {
			t.Errorf("first request from %s: status = %d, want 200", addr, w.Code)
		}
	}
}
