package usecase

import (
	"context"
	"errors"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"
	"hospital-management-api/pkg/pgerr"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrDoctorEmailExists = errors.New("email already exists")
)

type DoctorUsecase interface {
	CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error)
	ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error)
}

type doctorUsecase struct {
	db                *gorm.DB
	log               *logrus.Logger
	doctorProfileRepo repository.DoctorProfileRepository
	auditService      service.AuditService
}

func NewDoctorUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	doctorProfileRepo repository.DoctorProfileRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		db:                db,
		log:               log,
		doctorProfileRepo: doctorProfileRepo,
		auditService:      auditService,
	}
}

func (u *doctorUsecase) CreateDoctor(ctx context.Context, req *dto.CreateDoctorRequest) (*dto.DoctorResponse, error) {
	tx := u.db.WithContext(ctx).Begin()
	defer tx.Rollback()

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		u.log.Warnf("Failed to hash password: %+v", err)
		return nil, err
	}

	// User and profile are inserted together through the GORM association
	doctorProfile := &entity.DoctorProfile{
		Specialization: req.Specialization,
		Biography:      req.Biography,
		User: entity.User{
			Email:    req.Email,
			Password: string(hashedPassword),
			FullName: req.FullName,
			RoleID:   entity.RoleIDDoctor,
		},
	}
	if err := u.doctorProfileRepo.Create(ctx, tx, doctorProfile); err != nil {
		if pgerr.IsUniqueViolation(err, "email") {
			return nil, ErrDoctorEmailExists
		}
		u.log.Warnf("Failed to create doctor: %+v", err)
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		u.log.Warnf("Failed commit transaction: %+v", err)
		return nil, err
	}

	res := converter.DoctorProfileToResponse(doctorProfile)

	adminID, _ := middleware.GetUserIDFromContext(ctx)
	if err := u.auditService.LogCreate(ctx, &adminID, entity.AuditActionDoctorCreate, "doctor_profile", doctorProfile.UserID.String(), res); err != nil {
		u.log.Warnf("Failed to create audit log: %+v", err)
	}

	return res, nil
}

// ListDoctors returns the directory the scheduler chooses from, least loaded first.
func (u *doctorUsecase) ListDoctors(ctx context.Context) (*dto.DoctorListResponse, error) {
	loads, err := u.doctorProfileRepo.ListWithAppointmentCount(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}

	doctors := converter.DoctorLoadsToResponses(loads)

	return &dto.DoctorListResponse{
		Doctors: doctors,
		Total:   len(doctors),
	}, nil
}
