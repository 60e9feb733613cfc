// Package notify matches donors against a fresh blood alert and records one
// mock email per match. Real delivery is out of scope; the records double as
// the audit trail the portal shows.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"bloodalert/internal/domain"
	"bloodalert/internal/geo"
)

// Notifier finds matching donors for an alert and writes their notifications.
type Notifier struct {
	users         domain.UserRepository
	notifications domain.NotificationRepository
	logger        zerolog.Logger
	cooldown      time.Duration
	matchLimit    int
}

// New creates a Notifier. cooldown is how long a donor is skipped after a
// donation; matchLimit caps how many donors one alert notifies.
func New(users domain.UserRepository, notifications domain.NotificationRepository, logger zerolog.Logger, cooldown time.Duration, matchLimit int) *Notifier {
	return &Notifier{
		users:         users,
		notifications: notifications,
		logger:        logger,
		cooldown:      cooldown,
		matchLimit:    matchLimit,
	}
}

// NotifyMatchingDonors selects donors by blood type, availability and
// donation recency, then records a mock email per donor. It returns the
// number of notifications written; a failed write is logged and skipped so
// one bad record does not silence the remaining donors.
func (n *Notifier) NotifyMatchingDonors(ctx context.Context, alert *domain.BloodAlert) (int, error) {
	cutoff := time.Now().Add(-n.cooldown)
	donors, err := n.users.FindMatchingDonors(ctx, alert.BloodType, cutoff, n.matchLimit)
	if err != nil {
		return 0, fmt.Errorf("find matching donors: %w", err)
	}

	n.logger.Info().
		Str("alert_id", alert.ID).
		Str("blood_type", alert.BloodType).
		Int("matches", len(donors)).
		Msg("matched donors for alert")

	sent := 0
	for i := range donors {
		notification := BuildNotification(&donors[i], alert)
		if err := n.notifications.Create(ctx, notification); err != nil {
			n.logger.Error().Err(err).
				Str("alert_id", alert.ID).
				Str("to", notification.ToEmail).
				Msg("record mock email failed")
			continue
		}
		sent++
		n.logger.Debug().
			Str("alert_id", alert.ID).
			Str("to", notification.ToEmail).
			Msg("mock email recorded")
	}
	return sent, nil
}

// BuildNotification composes the mock email for one donor. Distance is
// annotated only when the alert carries a real location, which the current
// alert flow never sets; it never filters donors.
func BuildNotification(donor *domain.User, alert *domain.BloodAlert) *domain.EmailNotification {
	description := alert.Description
	if description == "" {
		description = "Emergency blood requirement"
	}

	subject := fmt.Sprintf("🩸 URGENT: %s Blood Needed at %s", alert.BloodType, alert.HospitalName)
	body := fmt.Sprintf(`Dear %s,

We urgently need your help! %s has requested %d units of %s blood.

Urgency Level: %s
Description: %s

Your blood type matches and you are within the search radius. If you are available to donate, please respond as soon as possible.

To respond to this alert, please log in to the Blood Donation Portal.

Thank you for your willingness to save lives!

Best regards,
Blood Donation Alert System
`, donor.Name, alert.HospitalName, alert.UnitsNeeded, alert.BloodType, strings.ToUpper(string(alert.Urgency)), description)

	var distance *float64
	if donor.HasCoordinates() && (alert.Latitude != 0 || alert.Longitude != 0) {
		d := geo.DistanceKM(alert.Latitude, alert.Longitude, *donor.Latitude, *donor.Longitude)
		distance = &d
	}

	return &domain.EmailNotification{
		ID:         uuid.NewString(),
		AlertID:    alert.ID,
		ToEmail:    donor.Email,
		ToName:     donor.Name,
		Subject:    subject,
		Body:       body,
		Status:     domain.NotificationStatusSent,
		DistanceKM: distance,
		SentAt:     time.Now().UTC(),
	}
}
