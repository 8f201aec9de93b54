package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointment_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name    string
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{"pending to confirmed", AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{"pending to cancelled", AppointmentStatusPending, AppointmentStatusCancelled, true},
		{"pending to completed", AppointmentStatusPending, AppointmentStatusCompleted, false},
		{"confirmed to cancelled", AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{"confirmed to completed", AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{"confirmed to pending", AppointmentStatusConfirmed, AppointmentStatusPending, false},
		{"cancelled is terminal", AppointmentStatusCancelled, AppointmentStatusPending, false},
		{"cancelled to confirmed", AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{"completed is terminal", AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{"same status is a no-op", AppointmentStatusCancelled, AppointmentStatusCancelled, true},
		{"pending to pending", AppointmentStatusPending, AppointmentStatusPending, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &Appointment{Status: tt.from}
			assert.Equal(t, tt.allowed, a.CanTransitionTo(tt.to))
		})
	}
}

func TestAppointment_IsActive(t *testing.T) {
	assert.True(t, (&Appointment{Status: AppointmentStatusPending}).IsActive())
	assert.True(t, (&Appointment{Status: AppointmentStatusConfirmed}).IsActive())
	assert.False(t, (&Appointment{Status: AppointmentStatusCancelled}).IsActive())
	assert.False(t, (&Appointment{Status: AppointmentStatusCompleted}).IsActive())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus("pending"))
	assert.True(t, ValidStatus("confirmed"))
	assert.True(t, ValidStatus("cancelled"))
	assert.True(t, ValidStatus("completed"))
	assert.False(t, ValidStatus("archived"))
	assert.False(t, ValidStatus(""))
}
