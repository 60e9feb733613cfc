package handlers

import (
	"net/http"

	"bloodalert/internal/domain"
)

// MockEmails exposes the mock email audit trail: donors see notifications
// addressed to them, hospital staff see the most recent across all donors.
func (a *App) MockEmails(w http.ResponseWriter, r *http.Request) {
	var (
		notifications []domain.EmailNotification
		err           error
	)
	if a.currentRole(r) == domain.UserRoleDonor {
		var donor *domain.User
		donor, err = a.currentUser(r)
		if err == nil {
			notifications, err = a.Notifications.ListByRecipient(r.Context(), donor.Email, donorEmailLimit)
		}
	} else {
		notifications, err = a.Notifications.ListRecent(r.Context(), allEmailLimit)
	}
	if err != nil {
		a.Logger.Error().Err(err).Msg("list notifications failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to list notifications")
		return
	}

	items := make([]notificationDTO, 0, len(notifications))
	for i := range notifications {
		items = append(items, toNotificationDTO(&notifications[i]))
	}
	a.json(w, http.StatusOK, items)
}
