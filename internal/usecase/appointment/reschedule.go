package appointment

import (
	"context"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	"github.com/BellezaEstetica/salon-scheduler/internal/cache"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
	"github.com/BellezaEstetica/salon-scheduler/internal/notify"
	"github.com/BellezaEstetica/salon-scheduler/internal/timezone"
)

type RescheduleAppointmentInput struct {
	AppointmentID uint
	Date          string
	Time          string
	Notes         string
}

type RescheduleAppointment struct {
	repo     domain.Repository
	grid     domain.SlotGrid
	notifier notify.Notifier
	slots    cache.SlotCache
	audit    *audit.Dispatcher
}

func NewRescheduleAppointment(
	repo domain.Repository,
	grid domain.SlotGrid,
	notifier notify.Notifier,
	slots cache.SlotCache,
	auditDispatcher *audit.Dispatcher,
) *RescheduleAppointment {
	return &RescheduleAppointment{
		repo:     repo,
		grid:     grid,
		notifier: notifier,
		slots:    slots,
		audit:    auditDispatcher,
	}
}

func (uc *RescheduleAppointment) Execute(
	ctx context.Context,
	in RescheduleAppointmentInput,
) (*models.Appointment, error) {

	if in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if !uc.grid.Contains(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	var (
		updated          *models.Appointment
		oldDate, oldTime string
	)

	// Freeing the old slot and occupying the new one must be atomic: no
	// observer may see both or neither occupied.
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, in.AppointmentID)
		if err != nil {
			return err
		}

		// The appointment being moved must not block itself.
		if err := tx.AssertSlotFree(ctx, in.Date, in.Time, ap.ID); err != nil {
			return err
		}

		oldDate, oldTime = ap.Date, ap.Time

		if err := domain.Reschedule(ap, in.Date, in.Time, in.Notes); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		updated = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.slots.Invalidate(ctx, oldDate, updated.Date)

	uc.notifier.Dispatch(notify.Event{
		Kind:        notify.EventRescheduled,
		To:          updated.Client.Email,
		ClientName:  updated.Client.Name,
		ServiceName: updated.Service.Name,
		Date:        updated.Date,
		Time:        updated.Time,
		OldDate:     oldDate,
		OldTime:     oldTime,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentRescheduled,
		Entity:   "appointment",
		EntityID: &updated.ID,
		Metadata: map[string]any{
			"from": oldDate + " " + oldTime,
			"to":   updated.Date + " " + updated.Time,
		},
	})

	return updated, nil
}
