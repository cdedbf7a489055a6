package converter

import (
	"go-dental-clinic/internal/delivery/dto"
	"go-dental-clinic/internal/domain/entity"
)

// AppointmentToResponse converts an Appointment entity to AppointmentResponse DTO
func AppointmentToResponse(appointment *entity.Appointment) *dto.AppointmentResponse {
	if appointment == nil {
		return nil
	}

	response := &dto.AppointmentResponse{
		ID:                appointment.ID,
		PatientID:         appointment.PatientID,
		TreatmentID:       appointment.TreatmentID,
		AppointmentDate:   appointment.AppointmentDate.Format("2006-01-02"),
		AppointmentTime:   appointment.TimeOfDay(),
		Status:            string(appointment.Status),
		Notes:             appointment.Notes,
		PractitionerNotes: appointment.PractitionerNotes,
		CreatedAt:         appointment.CreatedAt,
		UpdatedAt:         appointment.UpdatedAt,
	}

	// Include joined display fields if preloaded
	if appointment.Patient.ID != 0 {
		email := ""
		if appointment.Patient.Email != nil {
			email = *appointment.Patient.Email
		}
		response.Patient = &dto.PatientSummary{
			ID:        appointment.Patient.ID,
			Name:      appointment.Patient.Name,
			Email:     email,
			Phone:     appointment.Patient.Phone,
			Allergies: appointment.Patient.Allergies,
		}
	}

	if appointment.Treatment != nil && appointment.Treatment.ID != 0 {
		response.Treatment = &dto.TreatmentSummary{
			ID:       appointment.Treatment.ID,
			Name:     appointment.Treatment.Name,
			Duration: appointment.Treatment.Duration,
			Price:    appointment.Treatment.Price,
			Category: string(appointment.Treatment.Category),
		}
	}

	return response
}

// AppointmentsToResponses converts a slice of Appointment entities to response DTOs
func AppointmentsToResponses(appointments []entity.Appointment) []dto.AppointmentResponse {
	responses := make([]dto.AppointmentResponse, len(appointments))
	for i, appointment := range appointments {
		resp := AppointmentToResponse(&appointment)
		if resp != nil {
			responses[i] = *resp
		}
	}
	return responses
}

// StatsToResponse converts aggregated counts to the stats DTO
func StatsToResponse(stats *entity.AppointmentStats) *dto.AppointmentStatsResponse {
	if stats == nil {
		return nil
	}
	return &dto.AppointmentStatsResponse{
		Total:     stats.Total,
		Scheduled: stats.Scheduled,
		Confirmed: stats.Confirmed,
		Completed: stats.Completed,
		Cancelled: stats.Cancelled,
		Today:     stats.Today,
	}
}