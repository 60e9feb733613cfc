package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"bloodalert/internal/domain"
)

type respondRequest struct {
	Response string `json:"response"`
	Message  string `json:"message"`
}

// AlertRespond records a donor's answer to an alert. A donor may answer a
// given alert once; answering "available" takes the donor out of the
// matching pool and stamps their donation date.
func (a *App) AlertRespond(w http.ResponseWriter, r *http.Request) {
	if a.currentRole(r) != domain.UserRoleDonor {
		a.error(w, http.StatusForbidden, "forbidden", "only donors can respond to alerts")
		return
	}

	var req respondRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	answer := domain.ResponseAnswer(req.Response)
	if !answer.Valid() {
		a.error(w, http.StatusBadRequest, "bad_request", "response must be 'available' or 'not_available'")
		return
	}

	alertID := chi.URLParam(r, "id")
	if _, err := a.Alerts.GetByID(r.Context(), alertID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "alert not found")
			return
		}
		a.Logger.Error().Err(err).Msg("get alert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load alert")
		return
	}

	donor, err := a.currentUser(r)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	exists, err := a.Responses.Exists(r.Context(), alertID, donor.ID)
	if err != nil {
		a.Logger.Error().Err(err).Msg("check response failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record response")
		return
	}
	if exists {
		a.error(w, http.StatusBadRequest, "duplicate_response", domain.ErrDuplicateResponse.Error())
		return
	}

	response := &domain.DonorResponse{
		ID:          uuid.NewString(),
		AlertID:     alertID,
		DonorID:     donor.ID,
		DonorName:   donor.Name,
		DonorEmail:  donor.Email,
		DonorPhone:  donor.Phone,
		Answer:      answer,
		Message:     req.Message,
		RespondedAt: time.Now().UTC(),
	}
	if err := a.Responses.Create(r.Context(), response); err != nil {
		a.Logger.Error().Err(err).Msg("create response failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to record response")
		return
	}

	if answer == domain.ResponseAvailable {
		if err := a.Users.MarkDonated(r.Context(), donor.ID, response.RespondedAt); err != nil {
			// The response is already recorded; losing the availability flip
			// only means the donor may be matched again before the cooldown.
			a.Logger.Error().Err(err).Str("donor_id", donor.ID).Msg("mark donated failed")
		}
	}

	a.json(w, http.StatusOK, map[string]any{
		"message":  "Response recorded successfully",
		"response": toResponseDTO(response),
	})
}

// AlertResponses lists responses to one of the caller's alerts. Hospital
// staff only, and only for alerts they own.
func (a *App) AlertResponses(w http.ResponseWriter, r *http.Request) {
	if a.currentRole(r) != domain.UserRoleHospitalStaff {
		a.error(w, http.StatusForbidden, "forbidden", "access denied")
		return
	}

	alertID := chi.URLParam(r, "id")
	alert, err := a.Alerts.GetByID(r.Context(), alertID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		a.Logger.Error().Err(err).Msg("get alert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load alert")
		return
	}
	if err != nil || alert.HospitalID != a.currentUserID(r) {
		a.error(w, http.StatusNotFound, "not_found", "alert not found or access denied")
		return
	}

	responses, err := a.Responses.ListByAlert(r.Context(), alertID, responseListLimit)
	if err != nil {
		a.Logger.Error().Err(err).Msg("list responses failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list responses")
		return
	}

	items := make([]responseDTO, 0, len(responses))
	for i := range responses {
		items = append(items, toResponseDTO(&responses[i]))
	}
	a.json(w, http.StatusOK, items)
}
