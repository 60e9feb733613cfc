package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"bloodalert/internal/auth"
	"bloodalert/internal/domain"
	"bloodalert/internal/middleware"
)

type registerRequest struct {
	Email            string     `json:"email"`
	Password         string     `json:"password"`
	Name             string     `json:"name"`
	Role             string     `json:"role"`
	Phone            string     `json:"phone"`
	HospitalName     string     `json:"hospital_name"`
	HospitalAddress  string     `json:"hospital_address"`
	BloodType        string     `json:"blood_type"`
	City             string     `json:"city"`
	Latitude         *float64   `json:"latitude"`
	Longitude        *float64   `json:"longitude"`
	LastDonationDate *time.Time `json:"last_donation_date"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	AccessToken string  `json:"access_token"`
	TokenType   string  `json:"token_type"`
	User        userDTO `json:"user"`
}

var cityTitle = cases.Title(language.Und)

// Register creates a hospital staff or donor account and returns a bearer token.
func (a *App) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if _, err := mail.ParseAddress(req.Email); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "a valid email is required")
		return
	}
	if req.Password == "" || strings.TrimSpace(req.Name) == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "name and password are required")
		return
	}

	role := domain.UserRole(req.Role)
	switch role {
	case domain.UserRoleHospitalStaff:
		if strings.TrimSpace(req.HospitalName) == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "hospital name is required for hospital staff")
			return
		}
	case domain.UserRoleDonor:
		if req.BloodType == "" || strings.TrimSpace(req.City) == "" {
			a.error(w, http.StatusBadRequest, "bad_request", "blood type and city are required for donors")
			return
		}
		if !domain.ValidBloodType(req.BloodType) {
			a.error(w, http.StatusBadRequest, "bad_request", "unknown blood type")
			return
		}
	default:
		a.error(w, http.StatusBadRequest, "bad_request", "role must be 'hospital_staff' or 'donor'")
		return
	}

	if _, err := a.Users.GetByEmail(r.Context(), req.Email); err == nil {
		a.error(w, http.StatusBadRequest, "email_taken", domain.ErrEmailTaken.Error())
		return
	} else if !errors.Is(err, domain.ErrNotFound) {
		a.Logger.Error().Err(err).Msg("lookup email failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to register")
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		a.Logger.Error().Err(err).Msg("hash password failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to register")
		return
	}

	user := &domain.User{
		ID:               uuid.NewString(),
		Email:            req.Email,
		PasswordHash:     hash,
		Name:             strings.TrimSpace(req.Name),
		Role:             role,
		Phone:            strings.TrimSpace(req.Phone),
		HospitalName:     strings.TrimSpace(req.HospitalName),
		HospitalAddress:  strings.TrimSpace(req.HospitalAddress),
		BloodType:        req.BloodType,
		City:             cityTitle.String(strings.ToLower(strings.TrimSpace(req.City))),
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		LastDonationDate: req.LastDonationDate,
		IsAvailable:      true,
		CreatedAt:        time.Now().UTC(),
	}

	if role == domain.UserRoleDonor && !user.HasCoordinates() {
		a.fillDonorLocation(r, user)
	}

	if err := a.Users.Create(r.Context(), user); err != nil {
		a.Logger.Error().Err(err).Msg("create user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to register")
		return
	}

	token, err := middleware.SignToken(a.JWTSecret, user.ID, string(user.Role), a.TokenTTL)
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign token failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}

	a.json(w, http.StatusCreated, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserDTO(user),
	})
}

// fillDonorLocation backfills missing donor coordinates from the client IP.
// Best effort only; registration proceeds without coordinates when the
// resolver is absent or the lookup fails.
func (a *App) fillDonorLocation(r *http.Request, user *domain.User) {
	if a.GeoIP == nil {
		return
	}
	loc, err := a.GeoIP.Locate(middleware.ClientIP(r))
	if err != nil || loc == nil {
		return
	}
	if loc.Latitude == 0 && loc.Longitude == 0 {
		return
	}
	lat, lon := loc.Latitude, loc.Longitude
	user.Latitude = &lat
	user.Longitude = &lon
	a.Logger.Debug().
		Str("user_id", user.ID).
		Str("city", loc.City).
		Msg("donor coordinates resolved from client ip")
}

// Login verifies credentials and returns a bearer token.
func (a *App) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	user, err := a.Users.GetByEmail(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
			return
		}
		a.Logger.Error().Err(err).Msg("lookup user failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to login")
		return
	}
	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		a.error(w, http.StatusUnauthorized, "unauthorized", "invalid email or password")
		return
	}

	token, err := middleware.SignToken(a.JWTSecret, user.ID, string(user.Role), a.TokenTTL)
	if err != nil {
		a.Logger.Error().Err(err).Msg("sign token failed")
		a.error(w, http.StatusInternalServerError, "internal", "failed to sign token")
		return
	}

	a.json(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        toUserDTO(user),
	})
}

// Me returns the authenticated caller's profile.
func (a *App) Me(w http.ResponseWriter, r *http.Request) {
	user, err := a.currentUser(r)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthorized) {
			a.error(w, http.StatusUnauthorized, "unauthorized", "missing user context")
			return
		}
		a.error(w, http.StatusNotFound, "not_found", "user not found")
		return
	}
	a.json(w, http.StatusOK, toUserDTO(user))
}
