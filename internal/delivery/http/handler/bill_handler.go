package handler

import (
	"errors"
	"net/http"

	"hospital-management-api/internal/usecase"
	"hospital-management-api/pkg/response"
)

type BillHandler struct {
	billUsecase usecase.BillUsecase
}

func NewBillHandler(billUsecase usecase.BillUsecase) *BillHandler {
	return &BillHandler{billUsecase: billUsecase}
}

func (h *BillHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	bills, err := h.billUsecase.ListMine(r.Context())
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrUnauthenticated):
			response.Unauthorized(w, "Invalid token")
		case errors.Is(err, usecase.ErrNotPatient):
			response.Forbidden(w, "Only patients have bills")
		default:
			response.InternalServerError(w, "Failed to get bills")
		}
		return
	}

	response.Success(w, http.StatusOK, "Bills retrieved successfully", bills)
}
