package routes

import (
	"net/http"

	"blogapi/auth"
	"blogapi/cache"
	"blogapi/repositories"
	"blogapi/services"
)

// Dependencies carries everything route registration needs.
type Dependencies struct {
	Posts            *repositories.PostRepository
	Notes            *repositories.NoteRepository
	Tags             *repositories.TagRepository
	Users            *repositories.UserRepository
	Comments         *repositories.CommentRepository
	Bookmarks        *repositories.BookmarkRepository
	Devices          *repositories.DeviceRepository
	Statistics       *repositories.StatisticsRepository
	PostInteractions *repositories.InteractionRepository
	NoteInteractions *repositories.InteractionRepository

	Responses *cache.ResponseCache
	Tokens    *auth.TokenManager
	Notifier  *services.Notifier

	// Authenticate wraps a handler with the JWT auth middleware.
	Authenticate func(http.Handler) http.Handler
}
