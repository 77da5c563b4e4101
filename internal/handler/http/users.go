package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/internal/utils"
	"github.com/Daafh07/HeartbeatSenseDB/models"
)

// updateProfile applies a partial update to the authenticated user's profile
// and responds with a freshly assembled session payload reflecting the new
// state.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var request models.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.AuthService.UpdateProfile(ctx, userID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoFieldsToUpdate):
			log.Err(err).Msg("no fields to update")
			utils.WriteJSONError(w, "no fields to update", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Err(err).Str("user_id", userID.String()).Msg("authenticated user not found")
			utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during profile update")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	payload, err := h.services.SessionService.BuildPayload(ctx, updatedUser)
	if err != nil {
		log.Err(err).Msg("session payload assembly failed after profile update")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, payload, http.StatusOK)
}
