package domain

import "time"

// ResponseAnswer is a donor's answer to an alert.
type ResponseAnswer string

const (
	ResponseAvailable    ResponseAnswer = "available"
	ResponseNotAvailable ResponseAnswer = "not_available"
)

// Valid reports whether the answer is one of the supported values.
func (a ResponseAnswer) Valid() bool {
	return a == ResponseAvailable || a == ResponseNotAvailable
}

// DonorResponse records one donor's answer to one alert. Immutable once
// created; a donor may respond to a given alert at most once.
type DonorResponse struct {
	ID          string
	AlertID     string
	DonorID     string
	DonorName   string
	DonorEmail  string
	DonorPhone  string
	Answer      ResponseAnswer
	Message     string
	RespondedAt time.Time
}
