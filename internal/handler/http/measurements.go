package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/internal/utils"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// listMeasurements returns the authenticated user's measurement history,
// newest first. Optional query parameters:
//
//	since — RFC 3339 timestamp; only readings strictly after it are returned
//	limit — page size, clamped server-side
func (h *Handler) listMeasurements(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var since *time.Time
	if raw := r.URL.Query().Get("since"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			log.Err(err).Str("since", raw).Msg("invalid `since` query parameter")
			utils.WriteJSONError(w, "invalid `since` query parameter, expected RFC 3339", http.StatusBadRequest)
			return
		}
		since = &parsed
	}

	var limit uint64
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			log.Err(err).Str("limit", raw).Msg("invalid `limit` query parameter")
			utils.WriteJSONError(w, "invalid `limit` query parameter", http.StatusBadRequest)
			return
		}
		limit = parsed
	}

	measurements, err := h.services.MeasurementService.ListForUser(ctx, userID, since, limit)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during measurement listing")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, measurements, http.StatusOK)
}

// attachActivity labels one of the authenticated user's measurements with an
// activity from the catalogue.
func (h *Handler) attachActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in authenticated request context")
		utils.WriteJSONError(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	measurementID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		log.Err(err).Msg("invalid measurement ID")
		utils.WriteJSONError(w, "invalid measurement ID", http.StatusBadRequest)
		return
	}

	var request models.AttachActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	measurement, err := h.services.MeasurementService.AttachActivity(ctx, userID, measurementID, request.ActivityID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrMeasurementNotFound):
			log.Err(err).Str("measurement_id", measurementID.String()).Msg("measurement not found")
			utils.WriteJSONError(w, "measurement not found", http.StatusNotFound)
			return
		case errors.Is(err, store.ErrActivityNotFound):
			log.Err(err).Int64("activity_id", request.ActivityID).Msg("activity not found")
			utils.WriteJSONError(w, "activity not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during activity attachment")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, measurement, http.StatusOK)
}
