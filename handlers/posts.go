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

const postsScope = "posts"

func GetPosts(posts *repositories.PostRepository, responses *cache.ResponseCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		take := utils.IntFromString(query.Get("take"), 10)
		skip := utils.IntFromString(query.Get("skip"), 0)
		tagID := query.Get("tagId")

		cacheKey := r.URL.RequestURI()
		if body := responses.Get(r.Context(), postsScope, cacheKey); body != nil {
			writeCached(w, body)
			return
		}

		result, err := posts.List(r.Context(), take, skip, tagID)
		if err != nil {
			respondRepoError(w, err)
			return
		}

		responses.Set(r.Context(), postsScope, cacheKey, utils.ToJson(result))
		RespondJSON(w, http.StatusOK, result)
	}
}

func GetPostById(posts *repositories.PostRepository, responses *cache.ResponseCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]

		cacheKey := r.URL.RequestURI()
		if body := responses.Get(r.Context(), postsScope, cacheKey); body != nil {
			writeCached(w, body)
			return
		}

		post, err := posts.Get(r.Context(), id)
		if err != nil {
			respondRepoError(w, err)
			return
		}

		responses.Set(r.Context(), postsScope, cacheKey, utils.ToJson(post))
		RespondJSON(w, http.StatusOK, post)
	}
}

func SearchPosts(posts *repositories.PostRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := mux.Vars(r)["query"]

		result, err := posts.Search(r.Context(), query)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}

func GetPostsByTag(posts *repositories.PostRepository, responses *cache.ResponseCache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		tag := mux.Vars(r)["tag"]

		cacheKey := r.URL.RequestURI()
		if body := responses.Get(r.Context(), postsScope, cacheKey); body != nil {
			writeCached(w, body)
			return
		}

		result, err := posts.ByTagName(r.Context(), tag)
		if err != nil {
			respondRepoError(w, err)
			return
		}

		responses.Set(r.Context(), postsScope, cacheKey, utils.ToJson(result))
		RespondJSON(w, http.StatusOK, result)
	}
}

func GetRelatedPosts(posts *repositories.PostRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.RelatedPostsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "postId and tagIds are required")
			return
		}
		if req.Take <= 0 {
			req.Take = 4
		}

		result, err := posts.Related(r.Context(), req.PostID, req.TagIDs, req.Take)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, result)
	}
}

func CreatePost(posts *repositories.PostRepository, tags *repositories.TagRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.CreatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "title and content are required")
			return
		}

		postTags, err := tags.FindOrCreateByNames(r.Context(), req.Tags)
		if err != nil {
			respondRepoError(w, err)
			return
		}

		post := models.Post{
			Title:       req.Title,
			Description: req.Description,
			Cover:       req.Cover,
			Images:      req.Images,
			Content:     req.Content,
			Tags:        postTags,
		}
		if err := posts.Create(r.Context(), &post); err != nil {
			respondRepoError(w, err)
			return
		}

		w.Header().Set("Location", "/api/posts/"+post.ID)
		RespondJSON(w, http.StatusCreated, post)
	}
}

func UpdatePost(posts *repositories.PostRepository, tags *repositories.TagRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.UpdatePostRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "id, title and content are required")
			return
		}

		postTags, err := tags.FindOrCreateByNames(r.Context(), req.Tags)
		if err != nil {
			respondRepoError(w, err)
			return
		}

		post := models.Post{
			ID:          req.ID,
			Title:       req.Title,
			Description: req.Description,
			Cover:       req.Cover,
			Images:      req.Images,
			Content:     req.Content,
			Tags:        postTags,
		}
		if err := posts.Update(r.Context(), &post); err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, post)
	}
}

func DeletePost(posts *repositories.PostRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		if err := posts.Delete(r.Context(), id); err != nil {
			respondRepoError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeCached(w http.ResponseWriter, body []byte) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Cache", "HIT")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
