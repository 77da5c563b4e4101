package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/Daafh07/HeartbeatSenseDB/internal/logger"
	"github.com/Daafh07/HeartbeatSenseDB/internal/service"
	"github.com/Daafh07/HeartbeatSenseDB/internal/store"
	"github.com/Daafh07/HeartbeatSenseDB/internal/utils"
	"github.com/Daafh07/HeartbeatSenseDB/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	activities, err := h.services.ActivityService.ListActivities(ctx)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during activity listing")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, activities, http.StatusOK)
}

func (h *Handler) createActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var request models.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	activity, err := h.services.ActivityService.CreateActivity(ctx, request)
	if err != nil {
		if errors.Is(err, service.ErrInvalidDataProvided) {
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		}
		log.Err(err).Msg("unexpected error occurred during activity creation")
		utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, activity, http.StatusCreated)
}

func (h *Handler) updateActivity(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	activityID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		log.Err(err).Msg("invalid activity ID")
		utils.WriteJSONError(w, "invalid activity ID", http.StatusBadRequest)
		return
	}

	var request models.ActivityRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSONError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	activity, err := h.services.ActivityService.UpdateActivity(ctx, activityID, request)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSONError(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrActivityNotFound):
			log.Err(err).Int64("activity_id", activityID).Msg("activity not found")
			utils.WriteJSONError(w, "activity not found", http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during activity update")
			utils.WriteJSONError(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, activity, http.StatusOK)
}
