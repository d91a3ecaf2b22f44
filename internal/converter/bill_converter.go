package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func BillsToListResponse(bills []entity.Bill) *dto.BillListResponse {
	responses := make([]dto.BillResponse, len(bills))
	for i, b := range bills {
		responses[i] = dto.BillResponse{
			ID:       b.ID,
			BillDate: b.BillDate.Format(entity.DateLayout),
			Cost:     b.Cost,
			Paid:     b.Paid,
		}
	}

	return &dto.BillListResponse{
		Bills:       responses,
		Total:       len(bills),
		Outstanding: entity.Outstanding(bills),
	}
}
