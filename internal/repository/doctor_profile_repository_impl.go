package repository

import (
	"context"
	"errors"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorProfileRepository struct {
	db *gorm.DB
}

func NewDoctorProfileRepository(db *gorm.DB) domainRepo.DoctorProfileRepository {
	return &doctorProfileRepository{db: db}
}

func (r *doctorProfileRepository) Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error {
	return db.WithContext(ctx).Create(profile).Error
}

func (r *doctorProfileRepository) FindByUserID(ctx context.Context, doctorID uuid.UUID) (*entity.DoctorProfile, error) {
	var profile entity.DoctorProfile
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", doctorID).First(&profile).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// ListWithAppointmentCount counts every appointment a doctor ever had.
// Doctors whose account is deactivated are left out.
func (r *doctorProfileRepository) ListWithAppointmentCount(ctx context.Context) ([]entity.DoctorLoad, error) {
	var loads []entity.DoctorLoad
	err := r.db.WithContext(ctx).
		Table("doctor_profiles").
		Select(`
			doctor_profiles.user_id AS doctor_id,
			users.full_name AS full_name,
			doctor_profiles.specialization AS specialization,
			COUNT(appointments.id) AS appointment_count
		`).
		Joins("JOIN users ON users.id = doctor_profiles.user_id").
		Joins("LEFT JOIN appointments ON appointments.doctor_id = doctor_profiles.user_id").
		Where("users.is_active = ?", true).
		Group("doctor_profiles.user_id, users.full_name, doctor_profiles.specialization").
		Order("appointment_count ASC, doctor_profiles.user_id ASC").
		Scan(&loads).Error
	if err != nil {
		return nil, err
	}
	return loads, nil
}
