package converter

import (
	"doctor-matching/internal/delivery/dto"
	"doctor-matching/internal/domain/entity"
)

// SpecialtiesToResponses always returns a non-nil slice so empty lists encode as []
func SpecialtiesToResponses(specialties []entity.Specialty) []dto.SpecialtyResponse {
	responses := make([]dto.SpecialtyResponse, len(specialties))
	for i, specialty := range specialties {
		responses[i] = dto.SpecialtyResponse{
			ID:   specialty.ID,
			Name: specialty.Name,
		}
	}
	return responses
}
