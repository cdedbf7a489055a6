package dto

import "time"

// Request DTOs

type CreatePatientRequest struct {
	Name             string `json:"name" validate:"required,min=1,max=255"`
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone" validate:"omitempty,max=20"`
	Address          string `json:"address" validate:"omitempty,max=2000"`
	BirthDate        string `json:"birth_date" validate:"omitempty,dateformat"` // Format: YYYY-MM-DD
	EmergencyContact string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   string `json:"emergency_phone" validate:"omitempty,max=20"`
	MedicalHistory   string `json:"medical_history" validate:"omitempty,max=10000"`
	Allergies        string `json:"allergies" validate:"omitempty,max=2000"`
}

// UpdatePatientRequest carries a partial change set; nil fields are left
// untouched. Fields not listed here can never be updated.
type UpdatePatientRequest struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=255"`
	Email            *string `json:"email" validate:"omitempty,email"`
	Phone            *string `json:"phone" validate:"omitempty,max=20"`
	Address          *string `json:"address" validate:"omitempty,max=2000"`
	BirthDate        *string `json:"birth_date" validate:"omitempty,dateformat"`
	EmergencyContact *string `json:"emergency_contact" validate:"omitempty,max=255"`
	EmergencyPhone   *string `json:"emergency_phone" validate:"omitempty,max=20"`
	MedicalHistory   *string `json:"medical_history" validate:"omitempty,max=10000"`
	Allergies        *string `json:"allergies" validate:"omitempty,max=2000"`
}

// Response DTOs

type PatientResponse struct {
	ID               int       `json:"id"`
	Name             string    `json:"name"`
	Email            string    `json:"email,omitempty"`
	Phone            string    `json:"phone,omitempty"`
	Address          string    `json:"address,omitempty"`
	BirthDate        string    `json:"birth_date,omitempty"`
	EmergencyContact string    `json:"emergency_contact,omitempty"`
	EmergencyPhone   string    `json:"emergency_phone,omitempty"`
	MedicalHistory   string    `json:"medical_history,omitempty"`
	Allergies        string    `json:"allergies,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

type PatientListResponse struct {
	Patients []PatientResponse `json:"patients"`
	Total    int               `json:"total"`
}
