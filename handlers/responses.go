package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"runtime/debug"

	log "github.com/sirupsen/logrus"

	"blogapi/repositories"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// includeStacks is disabled in production by main.
var includeStacks = true

func SetIncludeStacks(include bool) {
	includeStacks = include
}

func RespondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		if err := json.NewEncoder(w).Encode(body); err != nil {
			log.Errorf("Error encoding response: %s", err)
		}
	}
}

func RespondError(w http.ResponseWriter, status int, message string) {
	resp := errorResponse{Success: false, Message: message}
	if includeStacks && status >= http.StatusInternalServerError {
		resp.Stack = string(debug.Stack())
	}
	RespondJSON(w, status, resp)
}

// respondRepoError maps repository failures onto the error envelope.
func respondRepoError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		RespondError(w, http.StatusNotFound, "not found")
		return
	}
	log.Errorf("Repository error: %s", err)
	RespondError(w, http.StatusInternalServerError, "internal server error")
}
