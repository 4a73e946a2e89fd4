package middleware

import (
	"context"
	"net/http"
	"time"

	log "github.com/sirupsen/logrus"

	"blogapi/repositories"
	"blogapi/utils"
)

// GuestTracking records each client address once so the statistics endpoint
// can report visit distributions. Tracking never blocks the request.
func GuestTracking(stats *repositories.StatisticsRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := utils.ClientIP(r)
			go func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := stats.TrackGuest(ctx, ip); err != nil {
					log.Errorf("Error tracking guest visit: %s", err)
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
