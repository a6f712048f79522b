package appointment

import (
	"context"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	"github.com/BellezaEstetica/salon-scheduler/internal/cache"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
	"github.com/BellezaEstetica/salon-scheduler/internal/notify"
	"github.com/BellezaEstetica/salon-scheduler/internal/timezone"
)

type CancelAppointment struct {
	repo     domain.Repository
	notifier notify.Notifier
	slots    cache.SlotCache
	audit    *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	notifier notify.Notifier,
	slots cache.SlotCache,
	auditDispatcher *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:     repo,
		notifier: notifier,
		slots:    slots,
		audit:    auditDispatcher,
	}
}

func (uc *CancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var (
		cancelled *models.Appointment
		wasNoop   bool
	)

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}

		if domain.Status(ap.Status) == domain.StatusCancelled {
			// Second cancel: accepted no-op, no fresh notification.
			wasNoop = true
			cancelled = ap
			return nil
		}

		if err := domain.Cancel(ap, timezone.Now()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		cancelled = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	if wasNoop {
		return cancelled, nil
	}

	uc.slots.Invalidate(ctx, cancelled.Date)

	uc.notifier.Dispatch(notify.Event{
		Kind:        notify.EventCancelled,
		To:          cancelled.Client.Email,
		ClientName:  cancelled.Client.Name,
		ServiceName: cancelled.Service.Name,
		Date:        cancelled.Date,
		Time:        cancelled.Time,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCancelled,
		Entity:   "appointment",
		EntityID: &cancelled.ID,
	})

	return cancelled, nil
}
