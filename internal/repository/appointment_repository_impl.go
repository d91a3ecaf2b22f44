package repository

import (
	"context"
	"time"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"
	"hospital-management-api/pkg/pgerr"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type appointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) ExistsForDoctor(ctx context.Context, doctorID uuid.UUID, date time.Time, slot string) (bool, error) {
	return r.exists(ctx, "doctor_id", doctorID, date, slot)
}

func (r *appointmentRepository) ExistsForPatient(ctx context.Context, patientID uuid.UUID, date time.Time, slot string) (bool, error) {
	return r.exists(ctx, "patient_id", patientID, date, slot)
}

func (r *appointmentRepository) exists(ctx context.Context, column string, id uuid.UUID, date time.Time, slot string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.Appointment{}).
		Where(column+" = ? AND appointment_date = ? AND appointment_time = ?", id, date.Format(entity.DateLayout), slot).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts the appointment and maps a slot uniqueness violation to ErrSlotTaken.
func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	err := r.db.WithContext(ctx).Omit("Doctor", "Patient").Create(appointment).Error
	if pgerr.IsUniqueViolation(err, "_slot") {
		return domainRepo.ErrSlotTaken
	}
	return err
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Appointment, error) {
	return r.find(ctx, r.db.Where("appointments.patient_id = ?", patientID))
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.Appointment, error) {
	return r.find(ctx, r.db.Where("appointments.doctor_id = ?", doctorID))
}

func (r *appointmentRepository) FindAll(ctx context.Context) ([]entity.Appointment, error) {
	return r.find(ctx, r.db)
}

func (r *appointmentRepository) find(ctx context.Context, query *gorm.DB) ([]entity.Appointment, error) {
	var appointments []entity.Appointment
	err := query.WithContext(ctx).
		Preload("Doctor.User").
		Preload("Patient.User").
		Order("appointment_date ASC, appointment_time ASC").
		Find(&appointments).Error
	if err != nil {
		return nil, err
	}
	return appointments, nil
}
