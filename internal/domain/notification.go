package domain

import "time"

// NotificationStatus is the delivery state of a mock email record.
type NotificationStatus string

const NotificationStatusSent NotificationStatus = "sent"

// EmailNotification is a write-only audit record standing in for real
// email delivery. DistanceKM is set when both the alert and the donor
// carry usable coordinates; it annotates, never filters.
type EmailNotification struct {
	ID         string
	AlertID    string
	ToEmail    string
	ToName     string
	Subject    string
	Body       string
	Status     NotificationStatus
	DistanceKM *float64
	SentAt     time.Time
}
