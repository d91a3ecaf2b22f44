package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/validator"

	"github.com/google/uuid"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid JSON body %q: %v", rec.Body.String(), err)
	}
	return env
}

type fakeAppointmentUsecase struct {
	res *dto.AutoScheduleResponse
	err error
}

func (f *fakeAppointmentUsecase) AutoSchedule(ctx context.Context) (*dto.AutoScheduleResponse, error) {
	return f.res, f.err
}

func (f *fakeAppointmentUsecase) ListMine(ctx context.Context) (*dto.AppointmentListResponse, error) {
	return &dto.AppointmentListResponse{Appointments: []dto.AppointmentResponse{}}, f.err
}

func TestAutoScheduleStatusCodes(t *testing.T) {
	booked := &dto.AutoScheduleResponse{
		Status:        "created",
		AppointmentID: 9,
		DoctorID:      uuid.New(),
		DoctorName:    "Dr. Grey",
		Date:          "2024-01-04",
		Time:          "09:00",
	}

	tests := []struct {
		name string
		uc   *fakeAppointmentUsecase
		want int
	}{
		{name: "created", uc: &fakeAppointmentUsecase{res: booked}, want: http.StatusCreated},
		{name: "not a patient", uc: &fakeAppointmentUsecase{err: usecase.ErrNotPatient}, want: http.StatusUnauthorized},
		{name: "no doctors", uc: &fakeAppointmentUsecase{err: service.ErrNoDoctorsAvailable}, want: http.StatusBadRequest},
		{name: "no slots", uc: &fakeAppointmentUsecase{err: service.ErrNoAvailableSlots}, want: http.StatusConflict},
		{name: "lost race", uc: &fakeAppointmentUsecase{err: service.ErrSchedulingConflict}, want: http.StatusConflict},
		{name: "store failure", uc: &fakeAppointmentUsecase{err: errors.New("db down")}, want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewAppointmentHandler(tt.uc)
			req := httptest.NewRequest(http.MethodPost, "/api/appointments/auto", nil)
			rec := httptest.NewRecorder()

			h.AutoSchedule(rec, req)

			if rec.Code != tt.want {
				t.Fatalf("status = %d, want %d", rec.Code, tt.want)
			}
			env := decode(t, rec)
			if env.Success != (tt.want == http.StatusCreated) {
				t.Errorf("success = %v for status %d", env.Success, rec.Code)
			}
		})
	}
}

func TestAutoScheduleBody(t *testing.T) {
	doctorID := uuid.New()
	h := NewAppointmentHandler(&fakeAppointmentUsecase{res: &dto.AutoScheduleResponse{
		Status:        "created",
		AppointmentID: 3,
		DoctorID:      doctorID,
		DoctorName:    "Dr. Grey",
		Date:          "2024-01-04",
		Time:          "09:00",
	}})
	rec := httptest.NewRecorder()
	h.AutoSchedule(rec, httptest.NewRequest(http.MethodPost, "/api/appointments/auto", nil))

	var data map[string]interface{}
	if err := json.Unmarshal(decode(t, rec).Data, &data); err != nil {
		t.Fatal(err)
	}
	want := map[string]interface{}{
		"status":         "created",
		"appointment_id": float64(3),
		"doctor_id":      doctorID.String(),
		"doctor_name":    "Dr. Grey",
		"date":           "2024-01-04",
		"time":           "09:00",
	}
	for k, v := range want {
		if data[k] != v {
			t.Errorf("data[%q] = %v, want %v", k, data[k], v)
		}
	}
}

type fakeAuthUsecase struct {
	loginErr error
	called   bool
}

func (f *fakeAuthUsecase) RegisterPatient(ctx context.Context, req *dto.RegisterPatientRequest) (*dto.UserResponse, error) {
	f.called = true
	return &dto.UserResponse{Email: req.Email, Role: "patient"}, nil
}

func (f *fakeAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	f.called = true
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900}, nil
}

func (f *fakeAuthUsecase) Logout(ctx context.Context, req *dto.LogoutRequest) error {
	f.called = true
	return nil
}

func (f *fakeAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	f.called = true
	return nil, usecase.ErrTokenRevoked
}

func (f *fakeAuthUsecase) GetCurrentUser(ctx context.Context) (*dto.UserResponse, error) {
	f.called = true
	return nil, usecase.ErrUserNotFound
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		loginErr   error
		want       int
		wantCalled bool
	}{
		{name: "success", body: `{"email":"a@b.co","password":"secret"}`, want: http.StatusOK, wantCalled: true},
		{name: "bad json", body: `{`, want: http.StatusBadRequest},
		{name: "invalid email", body: `{"email":"nope","password":"secret"}`, want: http.StatusBadRequest},
		{name: "wrong password", body: `{"email":"a@b.co","password":"x"}`, loginErr: usecase.ErrInvalidCredentials, want: http.StatusUnauthorized, wantCalled: true},
		{name: "disabled", body: `{"email":"a@b.co","password":"x"}`, loginErr: usecase.ErrAccountDisabled, want: http.StatusForbidden, wantCalled: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &fakeAuthUsecase{loginErr: tt.loginErr}
			h := NewAuthHandler(uc, validator.NewValidator())
			req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.Login(rec, req)

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if uc.called != tt.wantCalled {
				t.Errorf("usecase called = %v, want %v", uc.called, tt.wantCalled)
			}
		})
	}
}

func TestRegisterValidationReportsFields(t *testing.T) {
	h := NewAuthHandler(&fakeAuthUsecase{}, validator.NewValidator())
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"email":"a@b.co","password":"123"}`))
	rec := httptest.NewRecorder()

	h.RegisterPatient(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
	var fields map[string]string
	if err := json.Unmarshal(decode(t, rec).Error, &fields); err != nil {
		t.Fatal(err)
	}
	for _, f := range []string{"password", "full_name"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing validation error for %q in %v", f, fields)
		}
	}
}

func TestLogoutAcceptsEmptyBody(t *testing.T) {
	uc := &fakeAuthUsecase{}
	h := NewAuthHandler(uc, validator.NewValidator())
	rec := httptest.NewRecorder()

	h.Logout(rec, httptest.NewRequest(http.MethodPost, "/api/auth/logout", http.NoBody))

	if rec.Code != http.StatusOK || !uc.called {
		t.Errorf("status = %d called = %v, want 200 and called", rec.Code, uc.called)
	}
}

type fakeAuditLogUsecase struct {
	gotLimit int
}

func (f *fakeAuditLogUsecase) GetRecentAuditLogs(ctx context.Context, limit int) (*dto.AuditLogListResponse, error) {
	f.gotLimit = limit
	return &dto.AuditLogListResponse{Logs: []dto.AuditLogResponse{}}, nil
}

func TestAuditLogLimit(t *testing.T) {
	tests := []struct {
		query     string
		want      int
		wantLimit int
	}{
		{query: "", want: http.StatusOK, wantLimit: 0},
		{query: "?limit=25", want: http.StatusOK, wantLimit: 25},
		{query: "?limit=0", want: http.StatusBadRequest},
		{query: "?limit=abc", want: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			uc := &fakeAuditLogUsecase{}
			rec := httptest.NewRecorder()
			NewAuditLogHandler(uc).GetRecentAuditLogs(rec, httptest.NewRequest(http.MethodGet, "/api/admin/audit-logs"+tt.query, nil))

			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
			if tt.want == http.StatusOK && uc.gotLimit != tt.wantLimit {
				t.Errorf("limit = %d, want %d", uc.gotLimit, tt.wantLimit)
			}
		})
	}
}
