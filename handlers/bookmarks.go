package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/auth"
	"blogapi/dtos"
	"blogapi/models"
	"blogapi/repositories"
	"blogapi/utils"
)

func CreateGuestBookmark(bookmarks *repositories.BookmarkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil || req.GuestID == "" {
			RespondError(w, http.StatusBadRequest, "postId and guestId are required")
			return
		}

		key := guestKey(req.GuestID, utils.ClientIP(r))
		bookmark := models.Bookmark{
			Role:    models.RoleGuest,
			PostID:  req.PostID,
			GuestID: &key,
		}
		if err := bookmarks.Create(r.Context(), &bookmark); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusCreated, bookmark)
	}
}

func CreateUserBookmark(bookmarks *repositories.BookmarkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dtos.CreateBookmarkRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "postId is required")
			return
		}

		userID := claims.UserID
		bookmark := models.Bookmark{
			Role:   models.RoleUser,
			PostID: req.PostID,
			UserID: &userID,
		}
		if err := bookmarks.Create(r.Context(), &bookmark); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusCreated, bookmark)
	}
}

func GetGuestBookmarks(bookmarks *repositories.BookmarkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clientGuestID := r.URL.Query().Get("guestId")
		if clientGuestID == "" {
			RespondError(w, http.StatusBadRequest, "guestId is required")
			return
		}

		result, err := bookmarks.ListByGuest(r.Context(), guestKey(clientGuestID, utils.ClientIP(r)))
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}

func GetUserBookmarks(bookmarks *repositories.BookmarkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		result, err := bookmarks.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}

func DeleteBookmark(bookmarks *repositories.BookmarkRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := bookmarks.Delete(r.Context(), id); err != nil {
			respondRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
