package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreateStatisticRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	router.HandleFunc("/statistics", handlers.GetStatistics(deps.Statistics)).Methods("GET")

	return router
}
