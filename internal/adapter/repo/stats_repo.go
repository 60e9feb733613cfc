package repo

import (
	"context"

	"bloodalert/internal/domain"
	"bloodalert/internal/infra"
	"bloodalert/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository backed by PostgreSQL.
type StatsRepositoryPG struct {
	db infra.SQLExecutor
}

// NewStatsRepository creates a new StatsRepositoryPG.
func NewStatsRepository(db infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{db: db}
}

// HospitalDashboard aggregates alert and response counts for one hospital.
func (r *StatsRepositoryPG) HospitalDashboard(ctx context.Context, hospitalID string) (*domain.HospitalDashboard, error) {
	var d domain.HospitalDashboard
	err := r.db.QueryRow(ctx, sqlinline.QHospitalDashboard, hospitalID).Scan(
		&d.TotalAlerts,
		&d.ActiveAlerts,
		&d.AvailableResponses,
		&d.NotAvailableResponses,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// DonorDashboard aggregates response counts for one donor plus the number of
// open alerts matching their blood type. LastDonation is filled by the caller
// from the user record.
func (r *StatsRepositoryPG) DonorDashboard(ctx context.Context, donorID, bloodType string) (*domain.DonorDashboard, error) {
	var d domain.DonorDashboard
	err := r.db.QueryRow(ctx, sqlinline.QDonorDashboard, donorID, bloodType).Scan(
		&d.TotalResponses,
		&d.AvailableResponses,
		&d.ActiveAlertsForBloodType,
	)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
