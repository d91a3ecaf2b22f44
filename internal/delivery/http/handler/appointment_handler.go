package handler

import (
	"errors"
	"net/http"

	"hospital-management-api/internal/service"
	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
)

type AppointmentHandler struct {
	appointmentUsecase usecase.AppointmentUsecase
}

func NewAppointmentHandler(appointmentUsecase usecase.AppointmentUsecase) *AppointmentHandler {
	return &AppointmentHandler{appointmentUsecase: appointmentUsecase}
}

// AutoSchedule books the calling patient with the least loaded doctor
// @Summary Automatically schedule an appointment
// @Tags Appointments
// @Security BearerAuth
// @Produce json
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response "no doctors available"
// @Failure 401 {object} response.Response "caller is not a patient"
// @Failure 409 {object} response.Response "no available slots"
// @Router /appointments/auto [post]
func (h *AppointmentHandler) AutoSchedule(w http.ResponseWriter, r *http.Request) {
	appointment, err := h.appointmentUsecase.AutoSchedule(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNotPatient):
			response.Unauthorized(w, "Only patients can schedule appointments")
		case errors.Is(err, service.ErrNoDoctorsAvailable):
			response.Error(w, http.StatusBadRequest, "No doctors available", nil)
		case errors.Is(err, service.ErrNoAvailableSlots):
			response.Conflict(w, "No available slots")
		case errors.Is(err, service.ErrSchedulingConflict):
			response.Conflict(w, "Slot was taken, please retry")
		default:
			response.InternalServerError(w, "Failed to schedule appointment")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Appointment scheduled successfully", appointment)
}

func (h *AppointmentHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	appointments, err := h.appointmentUsecase.ListMine(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			response.Unauthorized(w, "Invalid token")
		case errors.Is(err, usecase.ErrUnsupportedRole):
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get appointments")
		}
		return
	}

	response.Success(w, http.StatusOK, "Appointments retrieved successfully", appointments)
}
