package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"bloodalert/internal/domain"
	"bloodalert/internal/infra/geoip"
	"bloodalert/internal/middleware"
)

// DonorNotifier fans a fresh alert out to matching donors.
type DonorNotifier interface {
	NotifyMatchingDonors(ctx context.Context, alert *domain.BloodAlert) (int, error)
}

// App bundles the dependencies the HTTP handlers need.
type App struct {
	Logger        zerolog.Logger
	JWTSecret     string
	TokenTTL      time.Duration
	Users         domain.UserRepository
	Alerts        domain.AlertRepository
	Responses     domain.ResponseRepository
	Notifications domain.NotificationRepository
	Stats         domain.StatsRepository
	Notifier      DonorNotifier
	GeoIP         geoip.LocationResolver
}

// Result caps mirroring the portal's pagination-free lists.
const (
	hospitalAlertLimit = 100
	donorAlertLimit    = 50
	responseListLimit  = 100
	donorEmailLimit    = 50
	allEmailLimit      = 100
)

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, code int, errCode, message string) {
	a.json(w, code, map[string]any{
		"error": map[string]string{
			"code":    errCode,
			"message": message,
		},
	})
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) currentRole(r *http.Request) domain.UserRole {
	return domain.UserRole(middleware.RoleFromContext(r.Context()))
}

// currentUser loads the full record for the authenticated caller.
func (a *App) currentUser(r *http.Request) (*domain.User, error) {
	userID := a.currentUserID(r)
	if userID == "" {
		return nil, domain.ErrUnauthorized
	}
	return a.Users.GetByID(r.Context(), userID)
}
