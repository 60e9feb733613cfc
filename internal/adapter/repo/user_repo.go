package repo

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"bloodalert/internal/domain"
	"bloodalert/internal/infra"
	"bloodalert/internal/sqlinline"
)

// UserRepositoryPG implements domain.UserRepository backed by PostgreSQL.
type UserRepositoryPG struct {
	db infra.SQLExecutor
}

// NewUserRepository creates a new UserRepositoryPG.
func NewUserRepository(db infra.SQLExecutor) *UserRepositoryPG {
	return &UserRepositoryPG{db: db}
}

// Create inserts a new user record.
func (r *UserRepositoryPG) Create(ctx context.Context, user *domain.User) error {
	_, err := r.db.Exec(ctx, sqlinline.QInsertUser,
		user.ID,
		user.Email,
		user.PasswordHash,
		user.Name,
		string(user.Role),
		user.Phone,
		user.HospitalName,
		user.HospitalAddress,
		user.BloodType,
		user.City,
		user.Latitude,
		user.Longitude,
		user.LastDonationDate,
		user.IsAvailable,
	)
	return err
}

// GetByID fetches a user by id.
func (r *UserRepositoryPG) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, sqlinline.QSelectUserByID, id))
}

// GetByEmail fetches a user by email, case-insensitively.
func (r *UserRepositoryPG) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return scanUser(r.db.QueryRow(ctx, sqlinline.QSelectUserByEmail, email))
}

// FindMatchingDonors returns available donors of the given blood type whose
// last donation (if any) predates the cutoff.
func (r *UserRepositoryPG) FindMatchingDonors(ctx context.Context, bloodType string, donatedBefore time.Time, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, sqlinline.QMatchDonors, bloodType, donatedBefore, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var donors []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUserFields(rows, &u); err != nil {
			return nil, err
		}
		donors = append(donors, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return donors, nil
}

// MarkDonated flips availability off and stamps the donation date.
func (r *UserRepositoryPG) MarkDonated(ctx context.Context, donorID string, when time.Time) error {
	_, err := r.db.Exec(ctx, sqlinline.QMarkDonorDonated, donorID, when)
	return err
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	if err := scanUserFields(row, &u); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func scanUserFields(row pgx.Row, u *domain.User) error {
	var role string
	err := row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.Name,
		&role,
		&u.Phone,
		&u.HospitalName,
		&u.HospitalAddress,
		&u.BloodType,
		&u.City,
		&u.Latitude,
		&u.Longitude,
		&u.LastDonationDate,
		&u.IsAvailable,
		&u.CreatedAt,
	)
	if err != nil {
		return err
	}
	u.Role = domain.UserRole(role)
	return nil
}

var _ domain.UserRepository = (*UserRepositoryPG)(nil)
