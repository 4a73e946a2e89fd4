package routes

import (
	"github.com/gorilla/mux"

	"blogapi/handlers"
)

func CreateUserRoutes(deps *Dependencies, router *mux.Router) *mux.Router {
	authed := deps.Authenticate

	router.Handle("/users", authed(handlers.GetUsers(deps.Users))).Methods("GET")
	router.Handle("/users/byemail/{email}", authed(handlers.GetUserByEmail(deps.Users))).Methods("GET")
	router.HandleFunc("/users", handlers.CreateUser(deps.Users)).Methods("POST")
	router.HandleFunc("/users/signin", handlers.SignIn(deps.Users, deps.Tokens)).Methods("POST")
	router.Handle("/users/devices", authed(handlers.RegisterDevice(deps.Devices))).Methods("POST")
	router.Handle("/users", authed(handlers.UpdateUser(deps.Users))).Methods("PUT")
	router.Handle("/users/{id}", authed(handlers.DeleteUser(deps.Users))).Methods("DELETE")
	router.Handle("/users/{id}", authed(handlers.GetUserById(deps.Users))).Methods("GET")

	return router
}
