package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreateNoteRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	authed := deps.Authenticate

	router.HandleFunc("/notes", handlers.GetNotes(deps.Notes, deps.Responses)).Methods("GET")
	router.HandleFunc("/notes/interactions/guest", handlers.GetGuestInteractions(deps.NoteInteractions)).Methods("GET")
	router.Handle("/notes/interactions/user", authed(handlers.GetUserInteractions(deps.NoteInteractions))).Methods("GET")
	router.HandleFunc("/notes/interaction/guest", handlers.CreateGuestInteraction(deps.NoteInteractions, "note")).Methods("POST")
	router.Handle("/notes/interaction/user", authed(handlers.CreateUserInteraction(deps.NoteInteractions, "note"))).Methods("POST")
	router.Handle("/notes", authed(handlers.CreateNote(deps.Notes))).Methods("POST")
	router.Handle("/notes/{id}", authed(handlers.DeleteNote(deps.Notes))).Methods("DELETE")
	router.HandleFunc("/notes/{id}", handlers.GetNoteById(deps.Notes)).Methods("GET")

	return router
}
