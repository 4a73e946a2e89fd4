package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"blogapi/auth"
	"blogapi/dtos"
	"blogapi/models"
	"blogapi/repositories"
	"blogapi/services"
)

func GetCommentsByPost(comments *repositories.CommentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		postID := mux.Vars(r)["postId"]

		result, err := comments.ListByPost(r.Context(), postID)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}

func CreateComment(comments *repositories.CommentRepository, posts *repositories.PostRepository, notifier *services.Notifier) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dtos.CreateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "postId and content are required")
			return
		}

		if _, err := posts.Get(r.Context(), req.PostID); err != nil {
			respondRepoError(w, err)
			return
		}

		comment := models.Comment{
			PostID:  req.PostID,
			UserID:  claims.UserID,
			Content: req.Content,
		}
		if err := comments.Create(r.Context(), &comment); err != nil {
			respondRepoError(w, err)
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			notifier.NotifyNewComment(ctx, claims.Email, comment.PostID, preview(comment.Content))
		}()

		RespondJSON(w, http.StatusCreated, comment)
	}
}

func UpdateComment(comments *repositories.CommentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dtos.UpdateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "id and content are required")
			return
		}

		if err := comments.Update(r.Context(), req.ID, claims.UserID, req.Content); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, map[string]string{"message": "comment updated"})
	}
}

func DeleteComment(comments *repositories.CommentRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		id := mux.Vars(r)["id"]
		if err := comments.Delete(r.Context(), id, claims.UserID); err != nil {
			respondRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) > 80 {
		return string(runes[:80]) + "..."
	}
	return content
}
