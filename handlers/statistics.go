package handlers

import (
	"net/http"

	"blogapi/repositories"
)

func GetStatistics(stats *repositories.StatisticsRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := stats.Collect(r.Context())
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}
