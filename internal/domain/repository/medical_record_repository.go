package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type MedicalRecordRepository interface {
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.MedicalRecord, error)
	FindByDoctorID(ctx context.Context, doctorID uuid.UUID) ([]entity.MedicalRecord, error)
}
