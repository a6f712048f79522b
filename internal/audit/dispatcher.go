package audit

import "go.uber.org/zap"

// Actions recorded across the appointment lifecycle and admin surface.
const (
	ActionAppointmentCreated     = "appointment_created"
	ActionAppointmentRescheduled = "appointment_rescheduled"
	ActionAppointmentCancelled   = "appointment_cancelled"
	ActionAppointmentCompleted   = "appointment_completed"
	ActionAppointmentConflict    = "appointment_conflict"
	ActionChargedAmountSet       = "charged_amount_set"
	ActionClientBlocked          = "client_blocked"
	ActionClientUnblocked        = "client_unblocked"
	ActionClientDeleted          = "client_deleted"
)

type Event struct {
	ActorID  *uint
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

type Dispatcher struct {
	logger *Logger
	appLog *zap.Logger
	queue  chan Event
}

func NewDispatcher(logger *Logger, appLog *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		logger: logger,
		appLog: appLog,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.ActorID,
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			d.appLog.Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Queue full: audit must never break the API.
		d.appLog.Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
