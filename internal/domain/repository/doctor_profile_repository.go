package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DoctorDirectory lists doctors with their total appointment count,
// ordered by count then doctor id, both ascending.
type DoctorDirectory interface {
	ListWithAppointmentCount(ctx context.Context) ([]entity.DoctorLoad, error)
}

type DoctorProfileRepository interface {
	DoctorDirectory
	Create(ctx context.Context, db *gorm.DB, profile *entity.DoctorProfile) error
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.DoctorProfile, error)
}
