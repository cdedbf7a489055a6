package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateAppointmentRequest struct {
	PatientID         int    `json:"patient_id" validate:"required,min=1"`
	TreatmentID       int    `json:"treatment_id" validate:"required,min=1"`
	AppointmentDate   string `json:"appointment_date" validate:"required,dateformat"` // Format: YYYY-MM-DD
	AppointmentTime   string `json:"appointment_time" validate:"required,timeformat"` // Format: HH:MM
	Notes             string `json:"notes" validate:"omitempty,max=2000"`
	PractitionerNotes string `json:"practitioner_notes" validate:"omitempty,max=2000"`
}

// UpdateAppointmentRequest carries a partial change set. Its fields are the
// full allow-list of updatable columns; absent fields are left untouched.
type UpdateAppointmentRequest struct {
	AppointmentDate   string  `json:"appointment_date" validate:"omitempty,dateformat"`
	AppointmentTime   string  `json:"appointment_time" validate:"omitempty,timeformat"`
	Status            string  `json:"status" validate:"omitempty,oneof=scheduled confirmed in_progress completed cancelled no_show"`
	Notes             *string `json:"notes" validate:"omitempty,max=2000"`
	PractitionerNotes *string `json:"practitioner_notes" validate:"omitempty,max=2000"`
}

// Response DTOs

type AppointmentResponse struct {
	ID                int                `json:"id"`
	PatientID         int                `json:"patient_id"`
	TreatmentID       *int               `json:"treatment_id,omitempty"`
	AppointmentDate   string             `json:"appointment_date"`
	AppointmentTime   string             `json:"appointment_time"`
	Status            string             `json:"status"`
	Notes             string             `json:"notes,omitempty"`
	PractitionerNotes string             `json:"practitioner_notes,omitempty"`
	Patient           *PatientSummary    `json:"patient,omitempty"`
	Treatment         *TreatmentSummary  `json:"treatment,omitempty"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
}

type PatientSummary struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Allergies string `json:"allergies,omitempty"`
}

type TreatmentSummary struct {
	ID       int             `json:"id"`
	Name     string          `json:"name"`
	Duration int             `json:"duration"`
	Price    decimal.Decimal `json:"price"`
	Category string          `json:"category"`
}

type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

type AppointmentStatsResponse struct {
	Total     int64 `json:"total"`
	Scheduled int64 `json:"scheduled"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Today     int64 `json:"today"`
}
