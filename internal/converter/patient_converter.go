package converter

import (
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// PatientProfileToResponse converts a PatientProfile entity + User entity to PatientResponse DTO
func PatientProfileToResponse(profile *entity.PatientProfile, user *entity.User) *dto.PatientResponse {
	if profile == nil || user == nil {
		return nil
	}

	return &dto.PatientResponse{
		ID:        user.ID,
		Email:     user.Email,
		FullName:  user.FullName,
		Address:   profile.Address,
		Phone:     profile.Phone,
		Condition: profile.Condition,
		UpdatedAt: user.UpdatedAt,
	}
}

func PatientProfileToProfileResponse(profile *entity.PatientProfile) *dto.PatientProfileResponse {
	if profile == nil {
		return nil
	}

	return &dto.PatientProfileResponse{
		UserID:        profile.UserID,
		Address:       profile.Address,
		Phone:         profile.Phone,
		AdmissionDate: formatOptionalDate(profile.AdmissionDate),
		DischargeDate: formatOptionalDate(profile.DischargeDate),
		Condition:     profile.Condition,
	}
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(entity.DateLayout)
}
