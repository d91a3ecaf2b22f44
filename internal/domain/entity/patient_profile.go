package entity

import (
	"time"

	"github.com/google/uuid"
)

// PatientProfile represents patient-specific profile data
type PatientProfile struct {
	UserID        uuid.UUID  `gorm:"type:uuid;primaryKey" json:"user_id"`
	Address       string     `gorm:"type:varchar(255)" json:"address,omitempty"`
	Phone         string     `gorm:"type:varchar(20);index" json:"phone,omitempty"`
	AdmissionDate *time.Time `gorm:"type:date" json:"admission_date,omitempty"`
	DischargeDate *time.Time `gorm:"type:date" json:"discharge_date,omitempty"`
	Condition     string     `gorm:"type:varchar(255)" json:"condition,omitempty"`

	// Relationships
	User           User            `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Appointments   []Appointment   `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
	MedicalRecords []MedicalRecord `gorm:"foreignKey:PatientID" json:"medical_records,omitempty"`
	Bills          []Bill          `gorm:"foreignKey:PatientID" json:"bills,omitempty"`
}

func (PatientProfile) TableName() string {
	return "patient_profiles"
}
