package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreateBookmarkRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	authed := deps.Authenticate

	router.HandleFunc("/bookmarks/guest", handlers.CreateGuestBookmark(deps.Bookmarks)).Methods("POST")
	router.Handle("/bookmarks/user", authed(handlers.CreateUserBookmark(deps.Bookmarks))).Methods("POST")
	router.HandleFunc("/bookmarks/guest", handlers.GetGuestBookmarks(deps.Bookmarks)).Methods("GET")
	router.Handle("/bookmarks/user", authed(handlers.GetUserBookmarks(deps.Bookmarks))).Methods("GET")
	router.HandleFunc("/bookmarks/{id}", handlers.DeleteBookmark(deps.Bookmarks)).Methods("DELETE")

	return router
}
