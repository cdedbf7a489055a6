package converter

import (
	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/domain/entity"
)

// TreatmentToResponse converts a Treatment entity to TreatmentResponse DTO
func TreatmentToResponse(treatment *entity.Treatment) *dto.TreatmentResponse {
	if treatment == nil {
		return nil
	}

	return &dto.TreatmentResponse{
		ID:          treatment.ID,
		Name:        treatment.Name,
		Description: treatment.Description,
		Duration:    treatment.Duration,
		Price:       treatment.Price,
		Category:    string(treatment.Category),
		CreatedAt:   treatment.CreatedAt,
		UpdatedAt:   treatment.UpdatedAt,
	}
}

// TreatmentsToResponses converts a slice of Treatment entities to response DTOs
func TreatmentsToResponses(treatments []entity.Treatment) []dto.TreatmentResponse {
	responses := make([]dto.TreatmentResponse, len(treatments))
	for i, treatment := range treatments {
		resp := TreatmentToResponse(&treatment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}
