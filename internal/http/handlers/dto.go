package handlers

import (
	"time"

	"bloodalert/internal/domain"
)

type userDTO struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Name             string     `json:"name"`
	Role             string     `json:"role"`
	Phone            string     `json:"phone,omitempty"`
	HospitalName     string     `json:"hospital_name,omitempty"`
	HospitalAddress  string     `json:"hospital_address,omitempty"`
	BloodType        string     `json:"blood_type,omitempty"`
	City             string     `json:"city,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	LastDonationDate *time.Time `json:"last_donation_date,omitempty"`
	IsAvailable      bool       `json:"is_available"`
	CreatedAt        time.Time  `json:"created_at"`
}

func toUserDTO(u *domain.User) userDTO {
	return userDTO{
		ID:               u.ID,
		Email:            u.Email,
		Name:             u.Name,
		Role:             string(u.Role),
		Phone:            u.Phone,
		HospitalName:     u.HospitalName,
		HospitalAddress:  u.HospitalAddress,
		BloodType:        u.BloodType,
		City:             u.City,
		Latitude:         u.Latitude,
		Longitude:        u.Longitude,
		LastDonationDate: u.LastDonationDate,
		IsAvailable:      u.IsAvailable,
		CreatedAt:        u.CreatedAt,
	}
}

type alertDTO struct {
	ID           string     `json:"id"`
	HospitalID   string     `json:"hospital_id"`
	HospitalName string     `json:"hospital_name"`
	BloodType    string     `json:"blood_type"`
	UnitsNeeded  int        `json:"units_needed"`
	UrgencyLevel string     `json:"urgency_level"`
	Description  string     `json:"description,omitempty"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	RadiusKM     float64    `json:"radius_km"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
}

func toAlertDTO(a *domain.BloodAlert) alertDTO {
	return alertDTO{
		ID:           a.ID,
		HospitalID:   a.HospitalID,
		HospitalName: a.HospitalName,
		BloodType:    a.BloodType,
		UnitsNeeded:  a.UnitsNeeded,
		UrgencyLevel: string(a.Urgency),
		Description:  a.Description,
		Latitude:     a.Latitude,
		Longitude:    a.Longitude,
		RadiusKM:     a.RadiusKM,
		Status:       string(a.Status),
		CreatedAt:    a.CreatedAt,
		ExpiresAt:    a.ExpiresAt,
	}
}

type responseDTO struct {
	ID          string    `json:"id"`
	AlertID     string    `json:"alert_id"`
	DonorID     string    `json:"donor_id"`
	DonorName   string    `json:"donor_name"`
	DonorEmail  string    `json:"donor_email"`
	DonorPhone  string    `json:"donor_phone,omitempty"`
	Response    string    `json:"response"`
	Message     string    `json:"message,omitempty"`
	RespondedAt time.Time `json:"responded_at"`
}

func toResponseDTO(r *domain.DonorResponse) responseDTO {
	return responseDTO{
		ID:          r.ID,
		AlertID:     r.AlertID,
		DonorID:     r.DonorID,
		DonorName:   r.DonorName,
		DonorEmail:  r.DonorEmail,
		DonorPhone:  r.DonorPhone,
		Response:    string(r.Answer),
		Message:     r.Message,
		RespondedAt: r.RespondedAt,
	}
}

type notificationDTO struct {
	ID         string    `json:"id"`
	AlertID    string    `json:"alert_id"`
	ToEmail    string    `json:"to_email"`
	ToName     string    `json:"to_name"`
	Subject    string    `json:"subject"`
	Body       string    `json:"body"`
	Status     string    `json:"status"`
	DistanceKM *float64  `json:"distance_km,omitempty"`
	SentAt     time.Time `json:"sent_at"`
}

func toNotificationDTO(n *domain.EmailNotification) notificationDTO {
	return notificationDTO{
		ID:         n.ID,
		AlertID:    n.AlertID,
		ToEmail:    n.ToEmail,
		ToName:     n.ToName,
		Subject:    n.Subject,
		Body:       n.Body,
		Status:     string(n.Status),
		DistanceKM: n.DistanceKM,
		SentAt:     n.SentAt,
	}
}
