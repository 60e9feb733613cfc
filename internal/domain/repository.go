package domain

import (
	"context"
	"time"
)

// UserRepository defines access methods for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	// FindMatchingDonors returns available donors of the given blood type
	// who never donated or last donated before the cutoff.
	FindMatchingDonors(ctx context.Context, bloodType string, donatedBefore time.Time, limit int) ([]User, error)
	// MarkDonated flips availability off and stamps the donation date.
	MarkDonated(ctx context.Context, donorID string, when time.Time) error
}

// AlertRepository defines persistence for blood alerts.
type AlertRepository interface {
	Create(ctx context.Context, alert *BloodAlert) error
	GetByID(ctx context.Context, id string) (*BloodAlert, error)
	ListByHospital(ctx context.Context, hospitalID string, limit int) ([]BloodAlert, error)
	ListActiveByBloodType(ctx context.Context, bloodType string, limit int) ([]BloodAlert, error)
}

// ResponseRepository defines persistence for donor responses.
type ResponseRepository interface {
	Create(ctx context.Context, response *DonorResponse) error
	Exists(ctx context.Context, alertID, donorID string) (bool, error)
	ListByAlert(ctx context.Context, alertID string, limit int) ([]DonorResponse, error)
}

// NotificationRepository handles the mock email audit trail.
type NotificationRepository interface {
	Create(ctx context.Context, notification *EmailNotification) error
	ListByRecipient(ctx context.Context, email string, limit int) ([]EmailNotification, error)
	ListRecent(ctx context.Context, limit int) ([]EmailNotification, error)
}

// StatsRepository serves dashboard aggregations.
type StatsRepository interface {
	HospitalDashboard(ctx context.Context, hospitalID string) (*HospitalDashboard, error)
	DonorDashboard(ctx context.Context, donorID, bloodType string) (*DonorDashboard, error)
}
