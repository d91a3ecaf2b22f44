package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"hospital-management-api/config"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var (
	ErrNoDoctorsAvailable = errors.New("no doctors available")
	ErrNoAvailableSlots   = errors.New("no available slots")
	// ErrSchedulingConflict means every attempt lost the chosen slot to a
	// concurrent booking.
	ErrSchedulingConflict = errors.New("appointment slot was taken by a concurrent booking")
)

// SchedulePolicy bounds the slot search. Candidate days run from
// today+LeadDays to today+LeadDays+HorizonDays inclusive, candidate hours from
// FirstHour to LastHour inclusive.
type SchedulePolicy struct {
	LeadDays    int
	HorizonDays int
	FirstHour   int
	LastHour    int
	MaxAttempts int
	Location    *time.Location
}

func DefaultSchedulePolicy() SchedulePolicy {
	return SchedulePolicy{
		LeadDays:    3,
		HorizonDays: 60,
		FirstHour:   9,
		LastHour:    16,
		MaxAttempts: 3,
		Location:    time.UTC,
	}
}

func NewSchedulePolicy(cfg config.SchedulerConfig, loc *time.Location) SchedulePolicy {
	if loc == nil {
		loc = time.UTC
	}
	return SchedulePolicy{
		LeadDays:    cfg.LeadDays,
		HorizonDays: cfg.HorizonDays,
		FirstHour:   cfg.FirstHour,
		LastHour:    cfg.LastHour,
		MaxAttempts: cfg.MaxAttempts,
		Location:    loc,
	}
}

// ScheduledAppointment is the outcome of a successful ScheduleNext call.
type ScheduledAppointment struct {
	AppointmentID int64
	DoctorID      uuid.UUID
	DoctorName    string
	Date          string // YYYY-MM-DD
	Time          string // HH:MM
}

// AuditRecorder receives an entry for every appointment the scheduler books.
type AuditRecorder interface {
	LogCreate(ctx context.Context, userID *uuid.UUID, action string, entityName string, entityID string, newValue interface{}) error
}

// AppointmentScheduler books a patient with the least loaded doctor at the
// earliest slot free for both. It keeps no state between calls.
type AppointmentScheduler struct {
	doctors      repository.DoctorDirectory
	appointments repository.AppointmentStore
	audit        AuditRecorder
	policy       SchedulePolicy
	now          func() time.Time
	log          *logrus.Logger
}

func NewAppointmentScheduler(
	doctors repository.DoctorDirectory,
	appointments repository.AppointmentStore,
	audit AuditRecorder,
	policy SchedulePolicy,
	log *logrus.Logger,
) *AppointmentScheduler {
	if policy.Location == nil {
		policy.Location = time.UTC
	}
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}
	return &AppointmentScheduler{
		doctors:      doctors,
		appointments: appointments,
		audit:        audit,
		policy:       policy,
		now:          time.Now,
		log:          log,
	}
}

// WithClock replaces the clock used to determine "today".
func (s *AppointmentScheduler) WithClock(now func() time.Time) *AppointmentScheduler {
	s.now = now
	return s
}

// ScheduleNext picks the doctor and slot and inserts the appointment.
// Selection and insert are not atomic: if the store rejects the insert
// because the slot was taken meanwhile, the whole decision is retried with
// fresh reads, up to MaxAttempts times.
func (s *AppointmentScheduler) ScheduleNext(ctx context.Context, patientID uuid.UUID) (*ScheduledAppointment, error) {
	today := s.today()

	for attempt := 1; attempt <= s.policy.MaxAttempts; attempt++ {
		doctor, err := s.pickDoctor(ctx)
		if err != nil {
			return nil, err
		}

		date, slot, err := s.findSlot(ctx, doctor.DoctorID, patientID, today)
		if err != nil {
			return nil, err
		}

		appointment := &entity.Appointment{
			DoctorID:        doctor.DoctorID,
			PatientID:       patientID,
			AppointmentDate: date,
			AppointmentTime: slot,
		}
		if err := s.appointments.Create(ctx, appointment); err != nil {
			if errors.Is(err, repository.ErrSlotTaken) {
				s.log.Warnf("Slot %s %s for doctor %s taken concurrently (attempt %d/%d)",
					date.Format(entity.DateLayout), slot, doctor.DoctorID, attempt, s.policy.MaxAttempts)
				continue
			}
			s.log.Errorf("Failed to insert appointment for patient %s: %+v", patientID, err)
			return nil, err
		}

		result := &ScheduledAppointment{
			AppointmentID: appointment.ID,
			DoctorID:      doctor.DoctorID,
			DoctorName:    doctor.FullName,
			Date:          date.Format(entity.DateLayout),
			Time:          slot,
		}
		s.recordAudit(ctx, patientID, result)

		s.log.Infof("Appointment scheduled: id=%d, doctor=%s, patient=%s, slot=%s %s",
			result.AppointmentID, result.DoctorID, patientID, result.Date, result.Time)
		return result, nil
	}

	return nil, ErrSchedulingConflict
}

// pickDoctor returns the doctor with the fewest appointments, lowest id first
// on ties. The directory's own ordering is not relied upon.
func (s *AppointmentScheduler) pickDoctor(ctx context.Context) (*entity.DoctorLoad, error) {
	loads, err := s.doctors.ListWithAppointmentCount(ctx)
	if err != nil {
		s.log.Warnf("Failed to list doctor load: %+v", err)
		return nil, err
	}
	if len(loads) == 0 {
		return nil, ErrNoDoctorsAvailable
	}
	return leastLoaded(loads), nil
}

func leastLoaded(loads []entity.DoctorLoad) *entity.DoctorLoad {
	best := &loads[0]
	for i := 1; i < len(loads); i++ {
		l := &loads[i]
		if l.AppointmentCount < best.AppointmentCount ||
			(l.AppointmentCount == best.AppointmentCount && bytes.Compare(l.DoctorID[:], best.DoctorID[:]) < 0) {
			best = l
		}
	}
	return best
}

// findSlot walks days then hours in ascending order and returns the first
// slot where neither the doctor nor the patient is booked.
func (s *AppointmentScheduler) findSlot(ctx context.Context, doctorID, patientID uuid.UUID, today time.Time) (time.Time, string, error) {
	start := today.AddDate(0, 0, s.policy.LeadDays)

	for offset := 0; offset <= s.policy.HorizonDays; offset++ {
		date := start.AddDate(0, 0, offset)
		for hour := s.policy.FirstHour; hour <= s.policy.LastHour; hour++ {
			slot := fmt.Sprintf("%02d:00", hour)

			doctorBusy, err := s.appointments.ExistsForDoctor(ctx, doctorID, date, slot)
			if err != nil {
				return time.Time{}, "", err
			}
			if doctorBusy {
				continue
			}

			patientBusy, err := s.appointments.ExistsForPatient(ctx, patientID, date, slot)
			if err != nil {
				return time.Time{}, "", err
			}
			if patientBusy {
				continue
			}

			return date, slot, nil
		}
	}

	return time.Time{}, "", ErrNoAvailableSlots
}

// today is the calendar date of now in the policy location, as a UTC midnight
// so that it maps onto a SQL date without shifting.
func (s *AppointmentScheduler) today() time.Time {
	y, m, d := s.now().In(s.policy.Location).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *AppointmentScheduler) recordAudit(ctx context.Context, patientID uuid.UUID, result *ScheduledAppointment) {
	if s.audit == nil {
		return
	}
	err := s.audit.LogCreate(ctx, &patientID, entity.AuditActionAppointmentCreate, "appointment",
		fmt.Sprintf("%d", result.AppointmentID), map[string]interface{}{
			"doctor_id": result.DoctorID.String(),
			"date":      result.Date,
			"time":      result.Time,
		})
	if err != nil {
		s.log.Warnf("Failed to create audit log for appointment %d: %+v", result.AppointmentID, err)
	}
}
