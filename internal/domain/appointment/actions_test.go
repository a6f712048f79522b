package appointment

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

func confirmedAppointment() *models.Appointment {
	return &models.Appointment{
		Date:   "2026-09-10",
		Time:   "10:00",
		Status: string(StatusConfirmed),
	}
}

func TestCancel(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.UTC)

	t.Run("confirmed becomes cancelled", func(t *testing.T) {
		ap := confirmedAppointment()

		require.NoError(t, Cancel(ap, now))
		assert.Equal(t, string(StatusCancelled), ap.Status)
		require.NotNil(t, ap.CancelledAt)
		assert.Equal(t, now, *ap.CancelledAt)
	})

	t.Run("second cancel is a no-op", func(t *testing.T) {
		ap := confirmedAppointment()
		require.NoError(t, Cancel(ap, now))
		first := ap.CancelledAt

		later := now.Add(time.Hour)
		require.NoError(t, Cancel(ap, later))
		assert.Equal(t, first, ap.CancelledAt)
	})

	t.Run("completed cannot be cancelled", func(t *testing.T) {
		ap := confirmedAppointment()
		require.NoError(t, Complete(ap, now))

		err := Cancel(ap, now)
		assert.True(t, httperr.IsInvalidState(err))
		assert.Equal(t, string(StatusCompleted), ap.Status)
	})
}

func TestComplete(t *testing.T) {
	now := time.Date(2026, 9, 10, 11, 0, 0, 0, time.UTC)

	t.Run("confirmed becomes completed", func(t *testing.T) {
		ap := confirmedAppointment()

		require.NoError(t, Complete(ap, now))
		assert.Equal(t, string(StatusCompleted), ap.Status)
		require.NotNil(t, ap.CompletedAt)
	})

	t.Run("cancelled cannot be completed", func(t *testing.T) {
		ap := confirmedAppointment()
		require.NoError(t, Cancel(ap, now))

		err := Complete(ap, now)
		assert.True(t, httperr.IsInvalidState(err))
		assert.Equal(t, string(StatusCancelled), ap.Status)
	})

	t.Run("completed cannot be completed twice", func(t *testing.T) {
		ap := confirmedAppointment()
		require.NoError(t, Complete(ap, now))

		err := Complete(ap, now)
		assert.True(t, httperr.IsInvalidState(err))
	})
}

func TestReschedule(t *testing.T) {
	t.Run("moves slot in place and keeps status", func(t *testing.T) {
		ap := confirmedAppointment()
		ap.Notes = "primeira visita"

		require.NoError(t, Reschedule(ap, "2026-09-12", "14:00", ""))
		assert.Equal(t, "2026-09-12", ap.Date)
		assert.Equal(t, "14:00", ap.Time)
		assert.Equal(t, string(StatusConfirmed), ap.Status)
		assert.Equal(t, "primeira visita", ap.Notes)
	})

	t.Run("overwrites notes when provided", func(t *testing.T) {
		ap := confirmedAppointment()
		ap.Notes = "old"

		require.NoError(t, Reschedule(ap, "2026-09-12", "14:00", "new"))
		assert.Equal(t, "new", ap.Notes)
	})

	t.Run("only confirmed can be rescheduled", func(t *testing.T) {
		now := time.Now()

		for _, terminal := range []func(*models.Appointment) error{
			func(ap *models.Appointment) error { return Cancel(ap, now) },
			func(ap *models.Appointment) error { return Complete(ap, now) },
		} {
			ap := confirmedAppointment()
			require.NoError(t, terminal(ap))

			err := Reschedule(ap, "2026-09-12", "14:00", "")
			assert.True(t, httperr.IsInvalidState(err))
			assert.Equal(t, "2026-09-10", ap.Date)
			assert.Equal(t, "10:00", ap.Time)
		}
	})
}
