package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type medicalRecordRepository struct {
	db *gorm.DB
}

func NewMedicalRecordRepository(db *gorm.DB) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.MedicalRecord, error) {
	return r.find(ctx, "patient_id = ?", patientID)
}

func (r *medicalRecordRepository) FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.MedicalRecord, error) {
	return r.find(ctx, "doctor_id = ?", doctorID)
}

func (r *medicalRecordRepository) find(ctx context.Context, cond string, id uuid.UUID) ([]entity.MedicalRecord, error) {
	var records []entity.MedicalRecord
	err := r.db.WithContext(ctx).
		Preload("Doctor.User").
		Preload("Treatments", func(db *gorm.DB) *gorm.DB {
			return db.Order("treatments.id ASC")
		}).
		Where(cond, id).
		Order("created_at DESC").
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
