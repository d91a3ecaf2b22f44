package converter

import (
	"testing"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestBillsToListResponseOutstanding(t *testing.T) {
	bills := []entity.Bill{
		{ID: 1, BillDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC), Cost: decimal.RequireFromString("120.50"), Paid: false},
		{ID: 2, BillDate: time.Date(2024, 2, 3, 0, 0, 0, 0, time.UTC), Cost: decimal.RequireFromString("80.00"), Paid: true},
		{ID: 3, BillDate: time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC), Cost: decimal.RequireFromString("9.25"), Paid: false},
	}

	got := BillsToListResponse(bills)

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if !got.Outstanding.Equal(decimal.RequireFromString("129.75")) {
		t.Errorf("Outstanding = %s, want 129.75", got.Outstanding)
	}
	if got.Bills[0].BillDate != "2024-02-01" {
		t.Errorf("BillDate = %s, want 2024-02-01", got.Bills[0].BillDate)
	}
}

func TestBillsToListResponseEmpty(t *testing.T) {
	got := BillsToListResponse(nil)
	if got.Total != 0 || !got.Outstanding.IsZero() {
		t.Errorf("got total=%d outstanding=%s, want zero", got.Total, got.Outstanding)
	}
	if got.Bills == nil {
		t.Error("Bills should be an empty slice, not nil")
	}
}

func TestAppointmentsToResponsesFormatsSlot(t *testing.T) {
	doctorID := uuid.New()
	appointments := []entity.Appointment{{
		ID:              7,
		DoctorID:        doctorID,
		AppointmentDate: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC),
		AppointmentTime: "09:00:00",
		Doctor:          entity.DoctorProfile{User: entity.User{FullName: "Dr. Smith"}},
		Patient:         entity.PatientProfile{User: entity.User{FullName: "Jane Doe"}},
	}}

	got := AppointmentsToResponses(appointments)

	if got[0].Date != "2024-01-04" || got[0].Time != "09:00" {
		t.Errorf("slot = %s %s, want 2024-01-04 09:00", got[0].Date, got[0].Time)
	}
	if got[0].DoctorName != "Dr. Smith" || got[0].PatientName != "Jane Doe" {
		t.Errorf("names = %q %q", got[0].DoctorName, got[0].PatientName)
	}
}

func TestUserToResponseFallsBackToRoleID(t *testing.T) {
	got := UserToResponse(&entity.User{RoleID: entity.RoleIDDoctor})
	if got.Role != entity.RoleDoctor {
		t.Errorf("Role = %q, want %q", got.Role, entity.RoleDoctor)
	}
	if UserToResponse(nil) != nil {
		t.Error("UserToResponse(nil) should be nil")
	}
}
