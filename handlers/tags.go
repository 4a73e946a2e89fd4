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

const tagsScope = "tags"

func GetTags(tags *repositories.TagRepository, responses *cache.ResponseCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cacheKey := r.URL.RequestURI()
		if body := responses.Get(r.Context(), tagsScope, cacheKey); body != nil {
			writeCached(w, body)
			return
		}

		result, err := tags.List(r.Context())
		if err != nil {
			respondRepoError(w, err)
			return
		}

		responses.Set(r.Context(), tagsScope, cacheKey, utils.ToJson(result))
		RespondJSON(w, http.StatusOK, result)
	}
}

func CreateTag(tags *repositories.TagRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreateTagRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "name is required")
			return
		}

		tag := models.Tag{Name: req.Name}
		if err := tags.Create(r.Context(), &tag); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusCreated, tag)
	}
}

func DeleteTag(tags *repositories.TagRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := tags.Delete(r.Context(), id); err != nil {
			respondRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
