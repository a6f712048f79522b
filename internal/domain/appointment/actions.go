package appointment

import (
	"time"

	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

// ===============================
// Domain Actions
// ===============================

// Cancel releases the appointment's slot. Already-cancelled appointments are
// left untouched and no error is returned.
func Cancel(ap *models.Appointment, now time.Time) error {
	if Status(ap.Status) == StatusCancelled {
		return nil
	}
	if err := CanCancel(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCancelled)
	ap.CancelledAt = &now
	return nil
}

func Complete(ap *models.Appointment, now time.Time) error {
	if err := CanComplete(Status(ap.Status)); err != nil {
		return err
	}

	ap.Status = string(StatusCompleted)
	ap.CompletedAt = &now
	return nil
}

// Reschedule moves the appointment in place. Slot occupancy must already have
// been asserted by the caller within the same transaction.
func Reschedule(ap *models.Appointment, date string, slot string, notes string) error {
	if err := CanReschedule(Status(ap.Status)); err != nil {
		return err
	}

	ap.Date = date
	ap.Time = slot
	if notes != "" {
		ap.Notes = notes
	}
	return nil
}
