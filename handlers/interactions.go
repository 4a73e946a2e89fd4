package handlers

import (
	"encoding/json"
	"net/http"

	"blogapi/auth"
	"blogapi/dtos"
	"blogapi/models"
	"blogapi/monitoring"
	"blogapi/repositories"
	"blogapi/utils"
)

// guestKey composes the stored guest identity from the client-generated id
// and the requester address, so the same browser id behind two addresses
// counts as two guests.
func guestKey(clientGuestID, ip string) string {
	return clientGuestID + "-" + ip
}

// CreateGuestInteraction records a VIEW/LIKE/UNLIKE/SHARE for a guest
// against one target kind.
func CreateGuestInteraction(ledger *repositories.InteractionRepository, target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req dtos.InteractionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil || req.GuestID == "" {
			RespondError(w, http.StatusBadRequest, "type, targetId and guestId are required")
			return
		}

		key := guestKey(req.GuestID, utils.ClientIP(r))
		rec := models.InteractionRecord{
			Role:     models.RoleGuest,
			Type:     req.Type,
			TargetID: req.TargetID,
			GuestID:  &key,
		}
		if err := ledger.Create(r.Context(), &rec); err != nil {
			respondRepoError(w, err)
			return
		}

		monitoring.InteractionsTotal.WithLabelValues(target, string(req.Type)).Inc()
		w.WriteHeader(http.StatusOK)
	}
}

// CreateUserInteraction records an interaction for the authenticated user.
func CreateUserInteraction(ledger *repositories.InteractionRepository, target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req dtos.InteractionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			RespondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if err := dtos.Validate(req); err != nil {
			RespondError(w, http.StatusBadRequest, "type and targetId are required")
			return
		}

		userID := claims.UserID
		rec := models.InteractionRecord{
			Role:     models.RoleUser,
			Type:     req.Type,
			TargetID: req.TargetID,
			UserID:   &userID,
		}
		if err := ledger.Create(r.Context(), &rec); err != nil {
			respondRepoError(w, err)
			return
		}

		monitoring.InteractionsTotal.WithLabelValues(target, string(req.Type)).Inc()
		w.WriteHeader(http.StatusOK)
	}
}

// GetGuestInteractions lists a guest's records of one type for a target.
// The guest id arrives raw from the client; the stored key is recomposed
// with the requester address.
func GetGuestInteractions(ledger *repositories.InteractionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		interactionType := models.InteractionType(query.Get("type"))
		clientGuestID := query.Get("guestId")
		targetID := query.Get("targetId")
		if !interactionType.Valid() || clientGuestID == "" || targetID == "" {
			RespondError(w, http.StatusBadRequest, "type, guestId and targetId are required")
			return
		}

		records, err := ledger.GuestInteractions(r.Context(), interactionType, guestKey(clientGuestID, utils.ClientIP(r)), targetID)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, records)
	}
}

// GetUserInteractions lists the authenticated user's records of one type for
// a target.
func GetUserInteractions(ledger *repositories.InteractionRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := auth.ClaimsFrom(r.Context())
		if claims == nil {
			RespondError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		query := r.URL.Query()
		interactionType := models.InteractionType(query.Get("type"))
		targetID := query.Get("targetId")
		if !interactionType.Valid() || targetID == "" {
			RespondError(w, http.StatusBadRequest, "type and targetId are required")
			return
		}

		records, err := ledger.UserInteractions(r.Context(), interactionType, claims.UserID, targetID)
		if err != nil {
			respondRepoError(w, err)
			return
		}
		RespondJSON(w, http.StatusOK, records)
	}
}
