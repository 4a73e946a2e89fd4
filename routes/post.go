package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreatePostRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	authed := deps.Authenticate

	router.HandleFunc("/posts", handlers.GetPosts(deps.Posts, deps.Responses)).Methods("GET")
	router.HandleFunc("/posts/search/{query}", handlers.SearchPosts(deps.Posts)).Methods("GET")
	router.HandleFunc("/posts/tag/{tag}", handlers.GetPostsByTag(deps.Posts, deps.Responses)).Methods("GET")
	router.HandleFunc("/posts/interactions/guest", handlers.GetGuestInteractions(deps.PostInteractions)).Methods("GET")
	router.Handle("/posts/interactions/user", authed(handlers.GetUserInteractions(deps.PostInteractions))).Methods("GET")
	router.HandleFunc("/posts/interaction/guest", handlers.CreateGuestInteraction(deps.PostInteractions, "post")).Methods("POST")
	router.Handle("/posts/interaction/user", authed(handlers.CreateUserInteraction(deps.PostInteractions, "post"))).Methods("POST")
	router.HandleFunc("/posts/related", handlers.GetRelatedPosts(deps.Posts)).Methods("POST")
	router.Handle("/posts", authed(handlers.CreatePost(deps.Posts, deps.Tags))).Methods("POST")
	router.Handle("/posts", authed(handlers.UpdatePost(deps.Posts, deps.Tags))).Methods("PUT")
	router.Handle("/posts/{id}", authed(handlers.DeletePost(deps.Posts))).Methods("DELETE")
	router.HandleFunc("/posts/{id}", handlers.GetPostById(deps.Posts, deps.Responses)).Methods("GET")

	return router
}
