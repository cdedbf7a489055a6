package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// Request DTOs

type CreateTreatmentRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"omitempty,max=2000"`
	Duration    int             `json:"duration" validate:"omitempty,min=1"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category" validate:"omitempty,oneof=preventive restorative endodontic surgical esthetic orthodontic periodontal"`
}

// Response DTOs

type TreatmentResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Duration    int             `json:"duration"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

type TreatmentListResponse struct {
	Treatments []TreatmentResponse `json:"treatments"`
	Total      int                 `json:"total"`
}
