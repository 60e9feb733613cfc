package repo

import (
	"context"

	"bloodalert/internal/domain"
	"bloodalert/internal/infra"
	"bloodalert/internal/sqlinline"
)

// ResponseRepositoryPG implements domain.ResponseRepository backed by PostgreSQL.
type ResponseRepositoryPG struct {
	db infra.SQLExecutor
}

// NewResponseRepository creates a new ResponseRepositoryPG.
func NewResponseRepository(db infra.SQLExecutor) *ResponseRepositoryPG {
	return &ResponseRepositoryPG{db: db}
}

// Create inserts a donor response. The unique (alert_id, donor_id) index
// backs the one-response-per-donor rule.
func (r *ResponseRepositoryPG) Create(ctx context.Context, response *domain.DonorResponse) error {
	_, err := r.db.Exec(ctx, sqlinline.QInsertResponse,
		response.ID,
		response.AlertID,
		response.DonorID,
		response.DonorName,
		response.DonorEmail,
		response.DonorPhone,
		string(response.Answer),
		response.Message,
		response.RespondedAt,
	)
	return err
}

// Exists reports whether the donor already responded to the alert.
func (r *ResponseRepositoryPG) Exists(ctx context.Context, alertID, donorID string) (bool, error) {
	var exists bool
	if err := r.db.QueryRow(ctx, sqlinline.QResponseExists, alertID, donorID).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// ListByAlert returns responses to one alert, newest first.
func (r *ResponseRepositoryPG) ListByAlert(ctx context.Context, alertID string, limit int) ([]domain.DonorResponse, error) {
	rows, err := r.db.Query(ctx, sqlinline.QListResponsesByAlert, alertID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var responses []domain.DonorResponse
	for rows.Next() {
		var dr domain.DonorResponse
		var answer string
		if err := rows.Scan(
			&dr.ID,
			&dr.AlertID,
			&dr.DonorID,
			&dr.DonorName,
			&dr.DonorEmail,
			&dr.DonorPhone,
			&answer,
			&dr.Message,
			&dr.RespondedAt,
		); err != nil {
			return nil, err
		}
		dr.Answer = domain.ResponseAnswer(answer)
		responses = append(responses, dr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return responses, nil
}

var _ domain.ResponseRepository = (*ResponseRepositoryPG)(nil)
