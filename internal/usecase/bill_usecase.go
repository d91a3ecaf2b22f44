package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

type BillUsecase interface {
	ListMine(ctx context.Context) (*dto.BillListResponse, error)
}

type billUsecase struct {
	log      *logrus.Logger
	billRepo repository.BillRepository
}

func NewBillUsecase(log *logrus.Logger, billRepo repository.BillRepository) BillUsecase {
	return &billUsecase{
		log:      log,
		billRepo: billRepo,
	}
}

func (u *billUsecase) ListMine(ctx context.Context) (*dto.BillListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	if roleID, _ := middleware.GetRoleIDFromContext(ctx); roleID != entity.RoleIDPatient {
		return nil, ErrNotPatient
	}

	bills, err := u.billRepo.FindByPatientID(ctx, userID)
	if err != nil {
		u.log.Warnf("Failed to list bills: %+v", err)
		return nil, err
	}

	return converter.BillsToListResponse(bills), nil
}
