package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppointmentStatus_IsValid(t *testing.T) {
	assert.True(t, AppointmentStatusPending.IsValid())
	assert.True(t, AppointmentStatusConfirmed.IsValid())
	assert.True(t, AppointmentStatusCompleted.IsValid())
	assert.True(t, AppointmentStatusCancelled.IsValid())

	assert.False(t, AppointmentStatus("scheduled").IsValid())
	assert.False(t, AppointmentStatus("").IsValid())
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from    AppointmentStatus
		to      AppointmentStatus
		allowed bool
	}{
		{AppointmentStatusPending, AppointmentStatusConfirmed, true},
		{AppointmentStatusPending, AppointmentStatusCancelled, true},
		{AppointmentStatusPending, AppointmentStatusCompleted, false},
		{AppointmentStatusConfirmed, AppointmentStatusCompleted, true},
		{AppointmentStatusConfirmed, AppointmentStatusCancelled, true},
		{AppointmentStatusConfirmed, AppointmentStatusPending, false},
		// Терминальные состояния не покидаются
		{AppointmentStatusCompleted, AppointmentStatusPending, false},
		{AppointmentStatusCompleted, AppointmentStatusCancelled, false},
		{AppointmentStatusCancelled, AppointmentStatusConfirmed, false},
		{AppointmentStatusCancelled, AppointmentStatusPending, false},
		// Переход в себя не разрешен
		{AppointmentStatusPending, AppointmentStatusPending, false},
		{AppointmentStatusConfirmed, AppointmentStatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to), "%s -> %s", tc.from, tc.to)
	}
}
