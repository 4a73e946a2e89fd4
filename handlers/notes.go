package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"blogapi/cache"
	"blogapi/dtos"
	"blogapi/models"
	"blogapi/repositories"
	"blogapi/utils"
)

const notesScope = "notes"

func GetNotes(notes *repositories.NoteRepository, responses *cache.ResponseCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		take := utils.IntFromString(r.URL.Query().Get("take"), 10)

		cacheKey := r.URL.RequestURI()
		if body := responses.Get(r.Context(), notesScope, cacheKey); body != nil {
			writeCached(w, body)
			return
		}

		result, err := notes.List(r.Context(), take)
		if err != nil {
			respondRepoError(w, err)
			return
		}

		responses.Set(r.Context(), notesScope, cacheKey, utils.ToJson(result))
		RespondJSON(w, http.StatusOK, result)
	}
}

func GetNoteById(notes *repositories.NoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		note, err := notes.Get(r.Context(), id)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, note)
	}
}

func CreateNote(notes *repositories.NoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateNoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "content is required")
			return
		}

		note := models.Note{Content: req.Content, Images: req.Images}
		if err := notes.Create(r.Context(), &note); err != nil {
			respondRepoError(w, err)
			return
		}

		w.Header().Set("Location", "/api/notes/"+note.ID)
		RespondJSON(w, http.StatusCreated, note)
	}
}

func DeleteNote(notes *repositories.NoteRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := notes.Delete(r.Context(), id); err != nil {
			respondRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
