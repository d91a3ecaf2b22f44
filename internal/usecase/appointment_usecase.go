package usecase

import (
	"context"

	"hospital-management-api/internal/converter"
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/delivery/http/middleware"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"
	"hospital-management-api/internal/service"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Scheduler books the next available appointment for a patient.
type Scheduler interface {
	ScheduleNext(ctx context.Context, patientID uuid.UUID) (*service.ScheduledAppointment, error)
}

type AppointmentUsecase interface {
	AutoSchedule(ctx context.Context) (*dto.AutoScheduleResponse, error)
	ListMine(ctx context.Context) (*dto.AppointmentListResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	scheduler       Scheduler
	appointmentRepo repository.AppointmentRepository
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	scheduler Scheduler,
	appointmentRepo repository.AppointmentRepository,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		scheduler:       scheduler,
		appointmentRepo: appointmentRepo,
	}
}

// AutoSchedule books the caller with the least loaded doctor. Only an
// authenticated patient may call it; anyone else gets ErrNotPatient.
func (u *appointmentUsecase) AutoSchedule(ctx context.Context) (*dto.AutoScheduleResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrNotPatient
	}
	roleID, ok := middleware.GetRoleIDFromContext(ctx)
	if !ok || roleID != entity.RoleIDPatient {
		return nil, ErrNotPatient
	}

	scheduled, err := u.scheduler.ScheduleNext(ctx, userID)
	if err != nil {
		return nil, err
	}

	return converter.ScheduledToResponse(scheduled), nil
}

// ListMine returns the caller's appointments: a patient's own, a doctor's
// own, or every appointment for an admin.
func (u *appointmentUsecase) ListMine(ctx context.Context) (*dto.AppointmentListResponse, error) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}
	roleID, _ := middleware.GetRoleIDFromContext(ctx)

	var (
		appointments []entity.Appointment
		err          error
	)
	switch roleID {
	case entity.RoleIDPatient:
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, userID)
	case entity.RoleIDDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, userID)
	case entity.RoleIDAdmin:
		appointments, err = u.appointmentRepo.FindAll(ctx)
	default:
		return nil, ErrUnsupportedRole
	}
	if err != nil {
		u.log.Warnf("Failed to list appointments: %+v", err)
		return nil, err
	}

	res := converter.AppointmentsToResponses(appointments)
	return &dto.AppointmentListResponse{
		Appointments: res,
		Total:        len(res),
	}, nil
}
