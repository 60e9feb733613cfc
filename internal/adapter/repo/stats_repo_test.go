package repo

import (
	"context"
	"testing"

	"bloodalert/internal/sqlinline"
)

func TestStatsRepositoryHospitalDashboard(t *testing.T) {
	db := &fakeDB{row: simpleRow{scan: func(dest ...any) error {
		return assignValues(dest, []any{int64(7), int64(3), int64(4), int64(2)})
	}}}
	repo := NewStatsRepository(db)

	d, err := repo.HospitalDashboard(context.Background(), "hospital-1")
	if err != nil {
		t.Fatalf("HospitalDashboard() error: %v", err)
	}
	if db.lastQuery != sqlinline.QHospitalDashboard {
		t.Fatalf("unexpected query: %s", db.lastQuery)
	}
	if d.TotalAlerts != 7 || d.ActiveAlerts != 3 {
		t.Fatalf("alert counts mismatch: %+v", d)
	}
	if d.TotalResponses() != 6 {
		t.Fatalf("TotalResponses() = %d, want 6", d.TotalResponses())
	}
}

func TestStatsRepositoryDonorDashboard(t *testing.T) {
	db := &fakeDB{row: simpleRow{scan: func(dest ...any) error {
		return assignValues(dest, []any{int64(5), int64(4), int64(2)})
	}}}
	repo := NewStatsRepository(db)

	d, err := repo.DonorDashboard(context.Background(), "donor-1", "O-")
	if err != nil {
		t.Fatalf("DonorDashboard() error: %v", err)
	}
	if len(db.lastArgs) != 2 || db.lastArgs[1] != "O-" {
		t.Fatalf("unexpected args: %#v", db.lastArgs)
	}
	if d.TotalResponses != 5 || d.AvailableResponses != 4 || d.ActiveAlertsForBloodType != 2 {
		t.Fatalf("donor dashboard mismatch: %+v", d)
	}
}
