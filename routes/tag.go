package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreateTagRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	authed := deps.Authenticate

	router.HandleFunc("/tags", handlers.GetTags(deps.Tags, deps.Responses)).Methods("GET")
	router.Handle("/tags", authed(handlers.CreateTag(deps.Tags))).Methods("POST")
	router.Handle("/tags/{id}", authed(handlers.DeleteTag(deps.Tags))).Methods("DELETE")

	return router
}
