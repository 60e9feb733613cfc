package repo

import (
	"context"
	"errors"
	"testing"
	"time"

	"bloodalert/internal/domain"
	"bloodalert/internal/sqlinline"
)

func TestUserRepositoryGetByEmailNotFound(t *testing.T) {
	repo := NewUserRepository(&fakeDB{})

	_, err := repo.GetByEmail(context.Background(), "nobody@example.com")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByEmail() error = %v, want domain.ErrNotFound", err)
	}
}

func TestUserRepositoryGetByEmailScansUser(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	db := &fakeDB{row: simpleRow{scan: func(dest ...any) error {
		return assignValues(dest, []any{
			"id-1", "donor@example.com", "hash", "Dina", "donor",
			"08123", "", "", "O+", "Jakarta",
			ptr(-6.2), ptr(106.8), nil, true, created,
		})
	}}}
	repo := NewUserRepository(db)

	user, err := repo.GetByEmail(context.Background(), "Donor@Example.com")
	if err != nil {
		t.Fatalf("GetByEmail() error: %v", err)
	}
	if db.lastQuery != sqlinline.QSelectUserByEmail {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if user.Role != domain.UserRoleDonor || user.BloodType != "O+" || user.City != "Jakarta" {
		t.Fatalf("scanned user mismatch: %+v", user)
	}
	if !user.HasCoordinates() {
		t.Fatal("expected coordinates to be set")
	}
	if user.LastDonationDate != nil {
		t.Fatalf("expected nil LastDonationDate, got %v", user.LastDonationDate)
	}
}

func TestUserRepositoryFindMatchingDonors(t *testing.T) {
	created := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	donated := time.Date(2024, 10, 1, 0, 0, 0, 0, time.UTC)
	db := &fakeDB{rows: &fakeRows{tuples: [][]any{
		{
			"id-1", "a@example.com", "hash", "Andi", "donor",
			"", "", "", "A+", "Bandung",
			nil, nil, nil, true, created,
		},
		{
			"id-2", "b@example.com", "hash", "Budi", "donor",
			"0811", "", "", "A+", "Jakarta",
			ptr(-6.2), ptr(106.8), ptr(donated), true, created,
		},
	}}}
	repo := NewUserRepository(db)

	cutoff := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	donors, err := repo.FindMatchingDonors(context.Background(), "A+", cutoff, 100)
	if err != nil {
		t.Fatalf("FindMatchingDonors() error: %v", err)
	}
	if db.lastQuery != sqlinline.QMatchDonors {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 3 || db.lastArgs[0] != "A+" || db.lastArgs[2] != 100 {
		t.Fatalf("unexpected args: %#v", db.lastArgs)
	}
	if got, ok := db.lastArgs[1].(time.Time); !ok || !got.Equal(cutoff) {
		t.Fatalf("cutoff arg = %#v, want %v", db.lastArgs[1], cutoff)
	}
	if len(donors) != 2 {
		t.Fatalf("expected 2 donors, got %d", len(donors))
	}
	if donors[0].Name != "Andi" || donors[1].Name != "Budi" {
		t.Fatalf("donor order mismatch: %+v", donors)
	}
	if donors[1].LastDonationDate == nil || !donors[1].LastDonationDate.Equal(donated) {
		t.Fatalf("LastDonationDate mismatch: %v", donors[1].LastDonationDate)
	}
}

func TestUserRepositoryMarkDonated(t *testing.T) {
	db := &fakeDB{}
	repo := NewUserRepository(db)

	when := time.Date(2025, 3, 2, 9, 30, 0, 0, time.UTC)
	if err := repo.MarkDonated(context.Background(), "id-2", when); err != nil {
		t.Fatalf("MarkDonated() error: %v", err)
	}
	if db.lastQuery != sqlinline.QMarkDonorDonated {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[0] != "id-2" {
		t.Fatalf("unexpected args: %#v", db.lastArgs)
	}
}
