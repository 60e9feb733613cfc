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

type createAlertRequest struct {
	BloodType    string  `json:"blood_type"`
	UnitsNeeded  int     `json:"units_needed"`
	UrgencyLevel string  `json:"urgency_level"`
	Description  string  `json:"description"`
	RadiusKM     float64 `json:"radius_km"`
}

// AlertsCreate posts a blood-need alert and fans notifications out to
// matching donors. Hospital staff only.
func (a *App) AlertsCreate(w http.ResponseWriter, r *http.Request) {
	if a.currentRole(r) != domain.UserRoleHospitalStaff {
		a.error(w, http.StatusForbidden, "forbidden", "only hospital staff can create alerts")
		return
	}

	var req createAlertRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if !domain.ValidBloodType(req.BloodType) {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown blood type")
		return
	}
	if req.UnitsNeeded <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "units_needed must be positive")
		return
	}
	if req.RadiusKM <= 0 {
		req.RadiusKM = domain.DefaultRadiusKM
	}

	staff, err := a.currentUser(r)
	if err != nil {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	now := time.Now().UTC()
	expiresAt := now.Add(domain.ExpiryWindow(domain.UrgencyLevel(req.UrgencyLevel)))
	alert := &domain.BloodAlert{
		ID:           uuid.NewString(),
		HospitalID:   staff.ID,
		HospitalName: staff.HospitalName,
		BloodType:    req.BloodType,
		UnitsNeeded:  req.UnitsNeeded,
		Urgency:      domain.UrgencyLevel(req.UrgencyLevel),
		Description:  req.Description,
		// Alert location is not collected yet; matching is blood-type only.
		Latitude:  0,
		Longitude: 0,
		RadiusKM:  req.RadiusKM,
		Status:    domain.AlertStatusActive,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}

	if err := a.Alerts.Create(r.Context(), alert); err != nil {
		a.Logger.Error().Err(err).Msg("create alert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to create alert")
		return
	}

	sent, err := a.Notifier.NotifyMatchingDonors(r.Context(), alert)
	if err != nil {
		a.Logger.Error().Err(err).Str("alert_id", alert.ID).Msg("notify donors failed")
		a.error(w, http.StatusInternalServerError, "internal", "alert created but donor notification failed")
		return
	}
	a.Logger.Info().Str("alert_id", alert.ID).Int("notified", sent).Msg("alert created")

	a.json(w, http.StatusCreated, toAlertDTO(alert))
}

// AlertsList returns the caller's view of alerts: hospital staff see their
// own, donors see active alerts for their blood type.
func (a *App) AlertsList(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	var (
		alerts []domain.BloodAlert
		err    error
	)
	if a.currentRole(r) == domain.UserRoleHospitalStaff {
		alerts, err = a.Alerts.ListByHospital(r.Context(), userID, hospitalAlertLimit)
	} else {
		var donor *domain.User
		donor, err = a.Users.GetByID(r.Context(), userID)
		if err == nil {
			alerts, err = a.Alerts.ListActiveByBloodType(r.Context(), donor.BloodType, donorAlertLimit)
		}
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("list alerts failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list alerts")
		return
	}

	items := make([]alertDTO, 0, len(alerts))
	for i := range alerts {
		items = append(items, toAlertDTO(&alerts[i]))
	}
	a.json(w, http.StatusOK, items)
}

// AlertsGet returns one alert by id.
func (a *App) AlertsGet(w http.ResponseWriter, r *http.Request) {
	alert, err := a.Alerts.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "alert not found")
			return
		}
		a.Logger.Error().Err(err).Msg("get alert failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load alert")
		return
	}
	a.json(w, http.StatusOK, toAlertDTO(alert))
}
