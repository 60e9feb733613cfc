package handlers

import (
	"net/http"
	"time"

	"bloodalert/internal/domain"
)

// DashboardStats aggregates per-role counters for the portal dashboard.
func (a *App) DashboardStats(w http.ResponseWriter, r *http.Request) {
	userID := a.currentUserID(r)
	if userID == "" {
		a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
		return
	}

	if a.currentRole(r) == domain.UserRoleHospitalStaff {
		stats, err := a.Stats.HospitalDashboard(r.Context(), userID)
		if err != nil {
			a.Logger.Error().Err(err).Msg("hospital dashboard failed")
			a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
			return
		}
		a.json(w, http.StatusOK, map[string]any{
			"total_alerts":            stats.TotalAlerts,
			"active_alerts":           stats.ActiveAlerts,
			"total_responses":         stats.TotalResponses(),
			"available_responses":     stats.AvailableResponses,
			"not_available_responses": stats.NotAvailableResponses,
		})
		return
	}

	donor, err := a.currentUser(r)
	if err != nil {
		a.error(w, http.StatusNotFound, "not_found", "user not found")
		return
	}
	stats, err := a.Stats.DonorDashboard(r.Context(), donor.ID, donor.BloodType)
	if err != nil {
		a.Logger.Error().Err(err).Msg("donor dashboard failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to load stats")
		return
	}

	var lastDonation *string
	if donor.LastDonationDate != nil {
		formatted := donor.LastDonationDate.Format(time.RFC3339)
		lastDonation = &formatted
	}
	a.json(w, http.StatusOK, map[string]any{
		"total_responses":              stats.TotalResponses,
		"available_responses":          stats.AvailableResponses,
		"active_alerts_for_blood_type": stats.ActiveAlertsForBloodType,
		"last_donation":                lastDonation,
	})
}
