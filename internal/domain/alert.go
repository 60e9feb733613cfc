package domain

import "time"

// AlertStatus enumerates the lifecycle states of a blood alert.
type AlertStatus string

const (
	AlertStatusActive    AlertStatus = "active"
	AlertStatusFulfilled AlertStatus = "fulfilled"
	AlertStatusCancelled AlertStatus = "cancelled"
)

// UrgencyLevel enumerates how quickly a hospital needs the blood.
type UrgencyLevel string

const (
	UrgencyCritical UrgencyLevel = "critical"
	UrgencyHigh     UrgencyLevel = "high"
	UrgencyMedium   UrgencyLevel = "medium"
)

// ExpiryWindow returns how long an alert of the given urgency stays open.
func ExpiryWindow(u UrgencyLevel) time.Duration {
	switch u {
	case UrgencyCritical:
		return 2 * time.Hour
	case UrgencyHigh:
		return 6 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// BloodAlert is a hospital-issued request for donor blood.
type BloodAlert struct {
	ID           string
	HospitalID   string
	HospitalName string
	BloodType    string
	UnitsNeeded  int
	Urgency      UrgencyLevel
	Description  string
	Latitude     float64
	Longitude    float64
	RadiusKM     float64
	Status       AlertStatus
	CreatedAt    time.Time
	ExpiresAt    *time.Time
}

// DefaultRadiusKM is the stored search radius when the hospital gives none.
const DefaultRadiusKM = 50
