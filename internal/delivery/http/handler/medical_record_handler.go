package handler

import (
	"errors"
	"net/http"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
)

type MedicalRecordHandler struct {
	recordUsecase usecase.MedicalRecordUsecase
}

func NewMedicalRecordHandler(recordUsecase usecase.MedicalRecordUsecase) *MedicalRecordHandler {
	return &MedicalRecordHandler{recordUsecase: recordUsecase}
}

func (h *MedicalRecordHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	records, err := h.recordUsecase.ListMine(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			response.Unauthorized(w, "Invalid token")
		case errors.Is(err, usecase.ErrUnsupportedRole):
			response.Forbidden(w, "")
		default:
			response.InternalServerError(w, "Failed to get medical records")
		}
		return
	}

	response.Success(w, http.StatusOK, "Medical records retrieved successfully", records)
}
