package domain

import "time"

// HospitalDashboard aggregates counts for a hospital staff account.
type HospitalDashboard struct {
	TotalAlerts           int64
	ActiveAlerts          int64
	AvailableResponses    int64
	NotAvailableResponses int64
}

// TotalResponses is the sum over both answer kinds.
func (d HospitalDashboard) TotalResponses() int64 {
	return d.AvailableResponses + d.NotAvailableResponses
}

// DonorDashboard aggregates counts for a donor account.
type DonorDashboard struct {
	TotalResponses           int64
	AvailableResponses       int64
	ActiveAlertsForBloodType int64
	LastDonation             *time.Time
}
