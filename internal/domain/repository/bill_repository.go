package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"

	"github.com/google/uuid"
)

type BillRepository interface {
	FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Bill, error)
}
