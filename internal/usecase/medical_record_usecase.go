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

type MedicalRecordUsecase interface {
	ListMine(ctx context.Context) (*dto.MedicalRecordListResponse, error)
}

type medicalRecordUsecase struct {
	log        *logrus.Logger
	recordRepo repository.MedicalRecordRepository
}

func NewMedicalRecordUsecase(log *logrus.Logger, recordRepo repository.MedicalRecordRepository) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:        log,
		recordRepo: recordRepo,
	}
}

// ListMine returns a patient's records, or the records a doctor wrote.
func (u *medicalRecordUsecase) ListMine(ctx context.Context) (*dto.MedicalRecordListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	var (
		records []entity.MedicalRecord
		err     error
	)
	switch roleID {
	case entity.RoleIDPatient:
		records, err = u.recordRepo.FindByPatientID(ctx, userID)
	case entity.RoleIDDoctor:
		records, err = u.recordRepo.FindByDoctorID(ctx, userID)
	default:
		return nil, ErrUnsupportedRole
	}
	if err != nil {
		u.log.Warnf("Failed to list medical records: %+v", err)
		return nil, err
	}

	res := converter.MedicalRecordsToResponses(records)
	return &dto.MedicalRecordListResponse{
		Records: res,
		Total:   len(res),
	}, nil
}
