package entity

import "time"

// Patient represents a clinic patient record
type Patient struct {
	ID               int        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name             string     `gorm:"type:varchar(255);not null" json:"name"`
	Email            *string    `gorm:"type:varchar(255);uniqueIndex:uq_patients_email" json:"email,omitempty"`
	Phone            string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Address          string     `gorm:"type:text" json:"address,omitempty"`
	BirthDate        *time.Time `gorm:"type:date" json:"birth_date,omitempty"`
	EmergencyContact string     `gorm:"type:varchar(255)" json:"emergency_contact,omitempty"`
	EmergencyPhone   string     `gorm:"type:varchar(20)" json:"emergency_phone,omitempty"`
	MedicalHistory   string     `gorm:"type:text" json:"medical_history,omitempty"`
	Allergies        string     `gorm:"type:text" json:"allergies,omitempty"`
	CreatedAt        time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Appointments []Appointment `gorm:"foreignKey:PatientID" json:"appointments,omitempty"`
}

func (Patient) TableName() string {
	return "patients"
}
