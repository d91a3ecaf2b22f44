package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bill is a charge issued to a patient
type Bill struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID       `gorm:"type:uuid;not null;index" json:"patient_id"`
	BillDate  time.Time       `gorm:"type:date;not null" json:"bill_date"`
	Cost      decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"cost"`
	Paid      bool            `gorm:"not null;default:false" json:"paid"`
}

func (Bill) TableName() string {
	return "bills"
}

// Outstanding sums the cost of unpaid bills.
func Outstanding(bills []Bill) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bills {
		if !b.Paid {
			total = total.Add(b.Cost)
		}
	}
	return total
}
