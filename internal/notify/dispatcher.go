package notify

import (
	"context"
	"time"

	"go.uber.org/zap"
)

type EventKind string

const (
	EventConfirmed   EventKind = "confirmed"
	EventCancelled   EventKind = "cancelled"
	EventRescheduled EventKind = "rescheduled"
)

type Event struct {
	Kind EventKind

	To          string
	ClientName  string
	ServiceName string

	Date string
	Time string

	// Filled for reschedules only.
	OldDate string
	OldTime string
}

// Notifier is the capability the lifecycle operations depend on. Dispatch is
// fire-and-forget: it never blocks the caller's response path and never
// surfaces transport failures.
type Notifier interface {
	Dispatch(ev Event)
}

type Dispatcher struct {
	sender EmailSender
	logger *zap.Logger
	queue  chan Event
}

func NewDispatcher(sender EmailSender, logger *zap.Logger) *Dispatcher {
	d := &Dispatcher{
		sender: sender,
		logger: logger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if ev.To == "" {
			continue
		}

		subject, html := render(ev)

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		err := d.sender.Send(ctx, EmailMessage{
			To:      ev.To,
			ToName:  ev.ClientName,
			Subject: subject,
			HTML:    html,
		})
		cancel()

		if err != nil {
			// Recorded for operational visibility only; the booking has
			// already committed.
			d.logger.Warn("notification failed",
				zap.String("kind", string(ev.Kind)),
				zap.String("to", ev.To),
				zap.Error(err),
			)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		// Queue full: drop the event rather than stall a booking response.
		d.logger.Warn("notification queue full, dropping event",
			zap.String("kind", string(ev.Kind)),
			zap.String("to", ev.To),
		)
	}
}

var _ Notifier = (*Dispatcher)(nil)
