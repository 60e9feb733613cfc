package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"bloodalert/internal/domain"
	"bloodalert/internal/infra"
	"bloodalert/internal/sqlinline"
)

// AlertRepositoryPG implements domain.AlertRepository backed by PostgreSQL.
type AlertRepositoryPG struct {
	db infra.SQLExecutor
}

// NewAlertRepository creates a new AlertRepositoryPG.
func NewAlertRepository(db infra.SQLExecutor) *AlertRepositoryPG {
	return &AlertRepositoryPG{db: db}
}

// Create inserts a new blood alert.
func (r *AlertRepositoryPG) Create(ctx context.Context, alert *domain.BloodAlert) error {
	_, err := r.db.Exec(ctx, sqlinline.QInsertAlert,
		alert.ID,
		alert.HospitalID,
		alert.HospitalName,
		alert.BloodType,
		alert.UnitsNeeded,
		string(alert.Urgency),
		alert.Description,
		alert.Latitude,
		alert.Longitude,
		alert.RadiusKM,
		string(alert.Status),
		alert.CreatedAt,
		alert.ExpiresAt,
	)
	return err
}

// GetByID fetches an alert by id.
func (r *AlertRepositoryPG) GetByID(ctx context.Context, id string) (*domain.BloodAlert, error) {
	var a domain.BloodAlert
	if err := scanAlertFields(r.db.QueryRow(ctx, sqlinline.QSelectAlertByID, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}

// ListByHospital returns a hospital's alerts, newest first.
func (r *AlertRepositoryPG) ListByHospital(ctx context.Context, hospitalID string, limit int) ([]domain.BloodAlert, error) {
	return r.list(ctx, sqlinline.QListAlertsByHospital, hospitalID, limit)
}

// ListActiveByBloodType returns active alerts for one blood type, newest first.
func (r *AlertRepositoryPG) ListActiveByBloodType(ctx context.Context, bloodType string, limit int) ([]domain.BloodAlert, error) {
	return r.list(ctx, sqlinline.QListActiveAlertsByBloodType, bloodType, limit)
}

func (r *AlertRepositoryPG) list(ctx context.Context, query string, key string, limit int) ([]domain.BloodAlert, error) {
	rows, err := r.db.Query(ctx, query, key, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var alerts []domain.BloodAlert
	for rows.Next() {
		var a domain.BloodAlert
		if err := scanAlertFields(rows, &a); err != nil {
			return nil, err
		}
		alerts = append(alerts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return alerts, nil
}

func scanAlertFields(row pgx.Row, a *domain.BloodAlert) error {
	var urgency, status string
	err := row.Scan(
		&a.ID,
		&a.HospitalID,
		&a.HospitalName,
		&a.BloodType,
		&a.UnitsNeeded,
		&urgency,
		&a.Description,
		&a.Latitude,
		&a.Longitude,
		&a.RadiusKM,
		&status,
		&a.CreatedAt,
		&a.ExpiresAt,
	)
	if err != nil {
		return err
	}
	a.Urgency = domain.UrgencyLevel(urgency)
	a.Status = domain.AlertStatus(status)
	return nil
}

var _ domain.AlertRepository = (*AlertRepositoryPG)(nil)
