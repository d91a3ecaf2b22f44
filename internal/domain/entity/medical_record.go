package entity

import (
	"time"

	"github.com/google/uuid"
)

// MedicalRecord is a diagnosis written by a doctor for a patient
type MedicalRecord struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID uuid.UUID `gorm:"type:uuid;not null;index" json:"patient_id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Symptoms  string    `gorm:"type:varchar(255)" json:"symptoms,omitempty"`
	Diagnosis string    `gorm:"type:varchar(255)" json:"diagnosis,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	// Relationships
	Doctor     DoctorProfile `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Treatments []Treatment   `gorm:"foreignKey:RecordID" json:"treatments,omitempty"`
}

func (MedicalRecord) TableName() string {
	return "medical_records"
}

// Treatment is a medicine prescribed as part of a medical record
type Treatment struct {
	ID           int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	RecordID     int64  `gorm:"not null;index" json:"record_id"`
	Medicine     string `gorm:"type:varchar(100)" json:"medicine"`
	Prescription string `gorm:"type:varchar(255)" json:"prescription,omitempty"`
}

func (Treatment) TableName() string {
	return "treatments"
}
