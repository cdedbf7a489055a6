package entity

import "time"

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no_show"
)

// IsValid reports whether the status is one of the known values
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow:
		return true
	}
	return false
}

// Appointment occupies exactly one (date, time) slot while non-cancelled
type Appointment struct {
	ID                int               `gorm:"primaryKey;autoIncrement" json:"id"`
	PatientID         int               `gorm:"not null;index" json:"patient_id"`
	TreatmentID       *int              `gorm:"index" json:"treatment_id,omitempty"`
	AppointmentDate   time.Time         `gorm:"type:date;not null;index" json:"appointment_date"`
	AppointmentTime   string            `gorm:"type:time;not null" json:"appointment_time"`
	Status            AppointmentStatus `gorm:"type:varchar(20);not null;default:'scheduled';index" json:"status"`
	Notes             string            `gorm:"type:text" json:"notes,omitempty"`
	PractitionerNotes string            `gorm:"type:text" json:"practitioner_notes,omitempty"`
	CreatedAt         time.Time         `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time         `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Patient   Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Treatment *Treatment `gorm:"foreignKey:TreatmentID" json:"treatment,omitempty"`
}

func (Appointment) TableName() string {
	return "appointments"
}

// IsCancelled checks if the appointment no longer holds its slot
func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

// Cancel releases the appointment's slot
func (a *Appointment) Cancel() {
	a.Status = AppointmentStatusCancelled
}

// TimeOfDay returns the slot time as HH:MM; Postgres time columns
// scan back with seconds attached.
func (a *Appointment) TimeOfDay() string {
	if len(a.AppointmentTime) > 5 {
		return a.AppointmentTime[:5]
	}
	return a.AppointmentTime
}

// AppointmentStats aggregates appointment counts for the dashboard
type AppointmentStats struct {
	Total     int64 `json:"total"`
	Scheduled int64 `json:"scheduled"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	Today     int64 `json:"today"`
}
