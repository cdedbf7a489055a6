package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// TreatmentCategory classifies a treatment in the clinic catalog
type TreatmentCategory string

const (
	CategoryPreventive  TreatmentCategory = "preventive"
	CategoryRestorative TreatmentCategory = "restorative"
	CategoryEndodontic  TreatmentCategory = "endodontic"
	CategorySurgical    TreatmentCategory = "surgical"
	CategoryEsthetic    TreatmentCategory = "esthetic"
	CategoryOrthodontic TreatmentCategory = "orthodontic"
	CategoryPeriodontal TreatmentCategory = "periodontal"
)

// IsValid reports whether the category is one of the known values
func (c TreatmentCategory) IsValid() bool {
	switch c {
	case CategoryPreventive, CategoryRestorative, CategoryEndodontic,
		CategorySurgical, CategoryEsthetic, CategoryOrthodontic, CategoryPeriodontal:
		return true
	}
	return false
}

// Treatment is immutable reference data describing a billable procedure
type Treatment struct {
	ID          int               `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string            `gorm:"type:varchar(255);not null" json:"name"`
	Description string            `gorm:"type:text" json:"description,omitempty"`
	Duration    int               `gorm:"not null;default:30" json:"duration"`
	Price       decimal.Decimal   `gorm:"type:decimal(10,2);not null;default:0" json:"price"`
	Category    TreatmentCategory `gorm:"type:varchar(50);not null;default:'preventive'" json:"category"`
	CreatedAt   time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time         `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Treatment) TableName() string {
	return "treatments"
}
