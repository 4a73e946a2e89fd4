package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreateCommentRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	authed := deps.Authenticate

	router.HandleFunc("/comments/post/{postId}", handlers.GetCommentsByPost(deps.Comments)).Methods("GET")
	router.Handle("/comments", authed(handlers.CreateComment(deps.Comments, deps.Posts, deps.Notifier))).Methods("POST")
	router.Handle("/comments", authed(handlers.UpdateComment(deps.Comments))).Methods("PUT")
	router.Handle("/comments/{id}", authed(handlers.DeleteComment(deps.Comments))).Methods("DELETE")

	return router
}
