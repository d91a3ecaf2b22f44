package dto

import "github.com/shopspring/decimal"

type BillResponse struct {
	ID       int64           `json:"id"`
	BillDate string          `json:"bill_date"`
	Cost     decimal.Decimal `json:"cost"`
	Paid     bool            `json:"paid"`
}

type BillListResponse struct {
	Bills       []BillResponse  `json:"bills"`
	Total       int             `json:"total"`
	Outstanding decimal.Decimal `json:"outstanding"`
}
