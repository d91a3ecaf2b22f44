package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
	"hospital-management-api/internal/service"
)

const scheduledStatus = "created"

func ScheduledToResponse(s *service.ScheduledAppointment) *dto.AutoScheduleResponse {
	if s == nil {
		return nil
	}

	return &dto.AutoScheduleResponse{
		Status:        scheduledStatus,
		AppointmentID: s.AppointmentID,
		DoctorID:      s.DoctorID,
		DoctorName:    s.DoctorName,
		Date:          s.Date,
		Time:          s.Time,
	}
}

// AppointmentsToResponses expects Doctor.User and Patient.User to be preloaded
// for the names; missing relations leave the names empty.
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i := range appointments {
		a := &appointments[i]
		responses[i] = dto.AppointmentResponse{
			ID:          a.ID,
			DoctorID:    a.DoctorID,
			DoctorName:  a.Doctor.User.FullName,
			PatientID:   a.PatientID,
			PatientName: a.Patient.User.FullName,
			Date:        a.DateString(),
			Time:        a.TimeString(),
		}
	}
	return responses
}
