package appointment

import "github.com/BellezaEstetica/salon-scheduler/internal/httperr"

// ===============================
// Appointment Status
// ===============================

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// ===============================
// Validations
// ===============================

// CanCancel reports whether an appointment may transition to cancelled.
// A second cancel of an already-cancelled appointment is an accepted no-op.
func CanCancel(current Status) error {
	if current == StatusCompleted {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanComplete allows finishing work only on a confirmed appointment.
func CanComplete(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

// CanReschedule: reschedule re-enters confirmed from confirmed only.
func CanReschedule(current Status) error {
	if current != StatusConfirmed {
		return httperr.ErrBusiness(httperr.CodeInvalidState)
	}
	return nil
}

func InitialStatus() Status {
	return StatusConfirmed
}
