package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

func MedicalRecordsToResponses(records []entity.MedicalRecord) []dto.MedicalRecordResponse {
	responses := make([]dto.MedicalRecordResponse, len(records))
	for i, record := range records {
		treatments := make([]dto.TreatmentResponse, len(record.Treatments))
		for j, t := range record.Treatments {
			treatments[j] = dto.TreatmentResponse{
				ID:           t.ID,
				Medicine:     t.Medicine,
				Prescription: t.Prescription,
			}
		}

		responses[i] = dto.MedicalRecordResponse{
			ID:         record.ID,
			PatientID:  record.PatientID,
			DoctorID:   record.DoctorID,
			DoctorName: record.Doctor.User.FullName,
			Symptoms:   record.Symptoms,
			Diagnosis:  record.Diagnosis,
			Treatments: treatments,
			CreatedAt:  record.CreatedAt,
		}
	}
	return responses
}
