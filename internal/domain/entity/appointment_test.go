package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatusIsValid(t *testing.T) {
	for _, status := range []AppointmentStatus{
		AppointmentStatusScheduled, AppointmentStatusConfirmed, AppointmentStatusInProgress,
		AppointmentStatusCompleted, AppointmentStatusCancelled, AppointmentStatusNoShow,
	} {
		assert.True(t, status.IsValid(), "status %q should be valid", status)
	}

	assert.False(t, AppointmentStatus("postponed").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestTimeOfDay(t *testing.T) {
	a := &Appointment{AppointmentTime: "09:30:00"}
	assert.Equal(t, "09:30", a.TimeOfDay())

	a.AppointmentTime = "09:30"
	assert.Equal(t, "09:30", a.TimeOfDay())
}

func TestCancelReleasesSlot(t *testing.T) {
	a := &Appointment{Status: AppointmentStatusScheduled}
	assert.False(t, a.IsCancelled())

	a.Cancel()
	assert.True(t, a.IsCancelled())
}
