package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/pgerr"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PatientProfileUsecase interface {
	UpdateSelfProfile(ctx context.Context, req *dto.PatientUpdateSelfRequest) (*dto.PatientResponse, error)
}

type patientProfileUsecase struct {
	db                 *gorm.DB
	log                *logrus.Logger
	userRepo           repository.UserRepository
	patientProfileRepo repository.PatientProfileRepository
	auditService       service.AuditService
}

func NewPatientProfileUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientProfileRepo repository.PatientProfileRepository,
	auditService service.AuditService,
) PatientProfileUsecase {
	return &patientProfileUsecase{
		db:                 db,
		log:                log,
		userRepo:           userRepo,
		patientProfileRepo: patientProfileRepo,
		auditService:       auditService,
	}
}

// UpdateSelfProfile updates the patient's own profile.
//
// Allowed fields: email, full_name, address, phone.
// Clinical fields (admission, discharge, condition) are not editable by the patient.
func (u *patientProfileUsecase) UpdateSelfProfile(ctx context.Context, req *dto.PatientUpdateSelfRequest) (*dto.PatientResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	profile, err := u.patientProfileRepo.FindByUserID(ctx, tx, userID)
	if err != nil {
		u.log.Warnf("Failed to find patient profile: %+v", err)
		return nil, err
	}
	if profile == nil {
		return nil, ErrPatientNotFound
	}

	user := &profile.User
	oldValue := converter.PatientProfileToResponse(profile, user)

	userChanged := applyString(&user.Email, req.Email)
	userChanged = applyString(&user.FullName, req.FullName) || userChanged
	profileChanged := applyString(&profile.Address, req.Address)
	profileChanged = applyString(&profile.Phone, req.Phone) || profileChanged

	if !userChanged && !profileChanged {
		return oldValue, nil
	}

	if userChanged {
		if err := u.userRepo.Update(ctx, tx, user); err != nil {
			if pgerr.IsUniqueViolation(err, "email") {
				return nil, ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to update user: %+v", err)
			return nil, err
		}
	}

	if profileChanged {
		if err := u.patientProfileRepo.Update(ctx, tx, profile); err != nil {
			u.log.Warnf("Failed to update patient profile: %+v", err)
			return nil, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	newValue := converter.PatientProfileToResponse(profile, user)
	if err := u.auditService.LogUpdate(ctx, &userID, entity.AuditActionProfileUpdate, "patient_profile", userID.String(), oldValue, newValue); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return newValue, nil
}

// applyString sets *dst to v when v is non-empty and different.
func applyString(dst *string, v string) bool {
	if v == "" || *dst == v {
		return false
	}
	*dst = v
	return true
}
