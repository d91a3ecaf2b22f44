package repository

import (
	"context"

	"hospital-management-api/internal/domain/entity"
	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) domainRepo.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) FindByPatientID(ctx context.Context, patientID uuid.UUID) ([]entity.Bill, error) {
	var bills []entity.Bill
	err := r.db.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("bill_date DESC, id DESC").
		Find(&bills).Error
	if err != nil {
		return nil, err
	}
	return bills, nil
}
