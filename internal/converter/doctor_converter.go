package converter

import (
	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"
)

// DoctorProfileToResponse converts a DoctorProfile entity to DoctorResponse DTO
func DoctorProfileToResponse(profile *entity.DoctorProfile) *dto.DoctorResponse {
	if profile == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:             profile.UserID,
		Email:          profile.User.Email,
		FullName:       profile.User.FullName,
		Specialization: profile.Specialization,
		Biography:      profile.Biography,
		IsActive:       profile.User.IsActive,
	}
}

// DoctorLoadsToResponses keeps the directory ordering.
func DoctorLoadsToResponses(loads []entity.DoctorLoad) []dto.DoctorLoadResponse {
	responses := make([]dto.DoctorLoadResponse, len(loads))
	for i, load := range loads {
		responses[i] = dto.DoctorLoadResponse{
			ID:               load.DoctorID,
			FullName:         load.FullName,
			Specialization:   load.Specialization,
			AppointmentCount: load.AppointmentCount,
		}
	}
	return responses
}
