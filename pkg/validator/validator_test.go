package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type slotRequest struct {
	Date string `validate:"required,dateformat"`
	Time string `validate:"required,timeformat"`
}

func TestSlotFormats(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&slotRequest{Date: "2026-09-15", Time: "10:30"}))

	err := v.Validate(&slotRequest{Date: "15/09/2026", Time: "10:30"})
	assert.Error(t, err)
	messages := v.FormatValidationErrors(err)
	assert.Contains(t, messages["Date"], "YYYY-MM-DD")

	err = v.Validate(&slotRequest{Date: "2026-09-15", Time: "10:30:00"})
	assert.Error(t, err)
	messages = v.FormatValidationErrors(err)
	assert.Contains(t, messages["Time"], "HH:MM")
}
