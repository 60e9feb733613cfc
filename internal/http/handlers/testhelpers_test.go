package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"bloodalert/internal/domain"
	"bloodalert/internal/middleware"
)

type fakeUsers struct {
	byID    map[string]*domain.User
	byEmail map[string]*domain.User
	created []*domain.User
	marked  []string
	err     error
}

func newFakeUsers(users ...*domain.User) *fakeUsers {
	f := &fakeUsers{
		byID:    map[string]*domain.User{},
		byEmail: map[string]*domain.User{},
	}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) Create(_ context.Context, user *domain.User) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, user)
	f.byID[user.ID] = user
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeUsers) FindMatchingDonors(_ context.Context, _ string, _ time.Time, _ int) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUsers) MarkDonated(_ context.Context, donorID string, _ time.Time) error {
	f.marked = append(f.marked, donorID)
	return nil
}

type fakeAlerts struct {
	byID       map[string]*domain.BloodAlert
	byHospital []domain.BloodAlert
	active     []domain.BloodAlert
	created    []*domain.BloodAlert
	err        error
}

func newFakeAlerts(alerts ...*domain.BloodAlert) *fakeAlerts {
	f := &fakeAlerts{byID: map[string]*domain.BloodAlert{}}
	for _, a := range alerts {
		f.byID[a.ID] = a
	}
	return f
}

func (f *fakeAlerts) Create(_ context.Context, alert *domain.BloodAlert) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, alert)
	f.byID[alert.ID] = alert
	return nil
}

func (f *fakeAlerts) GetByID(_ context.Context, id string) (*domain.BloodAlert, error) {
	if a, ok := f.byID[id]; ok {
		return a, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeAlerts) ListByHospital(_ context.Context, _ string, _ int) ([]domain.BloodAlert, error) {
	return f.byHospital, f.err
}

func (f *fakeAlerts) ListActiveByBloodType(_ context.Context, _ string, _ int) ([]domain.BloodAlert, error) {
	return f.active, f.err
}

type fakeResponses struct {
	exists  bool
	created []*domain.DonorResponse
	list    []domain.DonorResponse
	err     error
}

func (f *fakeResponses) Create(_ context.Context, response *domain.DonorResponse) error {
	if f.err != nil {
		return f.err
	}
	f.created = append(f.created, response)
	return nil
}

func (f *fakeResponses) Exists(_ context.Context, _, _ string) (bool, error) {
	return f.exists, nil
}

func (f *fakeResponses) ListByAlert(_ context.Context, _ string, _ int) ([]domain.DonorResponse, error) {
	return f.list, f.err
}

type fakeNotifications struct {
	byRecipient map[string][]domain.EmailNotification
	recent      []domain.EmailNotification
	lastLimit   int
	err         error
}

func (f *fakeNotifications) Create(_ context.Context, _ *domain.EmailNotification) error {
	return f.err
}

func (f *fakeNotifications) ListByRecipient(_ context.Context, email string, limit int) ([]domain.EmailNotification, error) {
	f.lastLimit = limit
	return f.byRecipient[email], f.err
}

func (f *fakeNotifications) ListRecent(_ context.Context, limit int) ([]domain.EmailNotification, error) {
	f.lastLimit = limit
	return f.recent, f.err
}

type fakeStats struct {
	hospital *domain.HospitalDashboard
	donor    *domain.DonorDashboard
	err      error
}

func (f *fakeStats) HospitalDashboard(_ context.Context, _ string) (*domain.HospitalDashboard, error) {
	return f.hospital, f.err
}

func (f *fakeStats) DonorDashboard(_ context.Context, _, _ string) (*domain.DonorDashboard, error) {
	return f.donor, f.err
}

type fakeNotifier struct {
	sent      int
	err       error
	lastAlert *domain.BloodAlert
}

func (f *fakeNotifier) NotifyMatchingDonors(_ context.Context, alert *domain.BloodAlert) (int, error) {
	f.lastAlert = alert
	return f.sent, f.err
}

func newTestApp() *App {
	return &App{
		Logger:        zerolog.Nop(),
		JWTSecret:     "test-secret",
		TokenTTL:      time.Hour,
		Users:         newFakeUsers(),
		Alerts:        newFakeAlerts(),
		Responses:     &fakeResponses{},
		Notifications: &fakeNotifications{},
		Stats:         &fakeStats{},
		Notifier:      &fakeNotifier{},
	}
}

// authedRequest builds a request carrying an authenticated identity, the way
// the JWT middleware would after verifying a token.
func authedRequest(t *testing.T, method, target string, body any, userID, role string) *http.Request {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req = req.WithContext(middleware.ContextWithUser(req.Context(), userID, role))
	}
	return req
}

// withURLParam attaches a chi route parameter so handlers can read it
// without going through the router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func decodeJSON(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(rec.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var payload struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	decodeJSON(t, rec, &payload)
	return payload.Error.Code
}
