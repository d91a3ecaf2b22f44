package repository

import (
	"context"
	"errors"
	"time"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSlotTaken is returned by Create when the doctor or the patient already
// holds an appointment at the same date and time.
var ErrSlotTaken = errors.New("appointment slot already taken")

// AppointmentStore is what the scheduler needs from appointment persistence.
// Dates are calendar dates, times are HH:MM.
type AppointmentStore interface {
	ExistsForDoctor(ctx context.Context, doctorID uuid.UUID, date time.Time, slot string) (bool, error)
	ExistsForPatient(ctx context.Context, patientID uuid.UUID, date time.Time, slot string) (bool, error)
	Create(ctx context.Context, appointment *entity.Appointment) error
}

type AppointmentRepository interface {
	AppointmentStore
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error)
	FindAll(ctx context.Context) ([]entity.Appointment, error)
}
