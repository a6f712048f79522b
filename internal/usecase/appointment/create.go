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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	ClientName  string
	ClientEmail string
	ClientPhone string

	ServiceID uint

	Date  string // YYYY-MM-DD
	Time  string // HH:MM slot label
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo     domain.Repository
	grid     domain.SlotGrid
	notifier notify.Notifier
	slots    cache.SlotCache
	audit    *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	grid domain.SlotGrid,
	notifier notify.Notifier,
	slots cache.SlotCache,
	auditDispatcher *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:     repo,
		grid:     grid,
		notifier: notifier,
		slots:    slots,
		audit:    auditDispatcher,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	if in.ClientName == "" || in.ClientEmail == "" || in.ClientPhone == "" ||
		in.ServiceID == 0 || in.Date == "" || in.Time == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if _, err := timezone.ParseDate(in.Date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if !uc.grid.Contains(in.Time) {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	var created *models.Appointment

	// Client resolution, slot reservation and the insert form one atomic
	// unit: no client row survives a failed booking.
	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {

		svc, err := tx.GetService(ctx, in.ServiceID)
		if err != nil {
			if httperr.IsNotFound(err) {
				return httperr.ErrBusiness(httperr.CodeValidation)
			}
			return err
		}

		if err := tx.AssertSlotFree(ctx, in.Date, in.Time, 0); err != nil {
			return err
		}

		client, err := tx.GetOrCreateClient(
			ctx,
			in.ClientName,
			in.ClientEmail,
			in.ClientPhone,
		)
		if err != nil {
			return err
		}

		if client.Blocked {
			return httperr.ErrBusiness(httperr.CodeBlocked)
		}

		ap := &models.Appointment{
			ClientID:  client.ID,
			ServiceID: svc.ID,
			Date:      in.Date,
			Time:      in.Time,
			Status:    string(domain.InitialStatus()),
			Notes:     in.Notes,
		}
		domain.Snapshot(ap, svc)

		if err := tx.CreateAppointment(ctx, ap); err != nil {
			return err
		}

		ap.Client = *client
		ap.Service = *svc
		created = ap
		return nil
	})

	if err != nil {
		if httperr.IsSlotConflict(err) {
			uc.audit.Dispatch(audit.Event{
				Action: audit.ActionAppointmentConflict,
				Entity: "appointment",
				Metadata: map[string]any{
					"date": in.Date,
					"time": in.Time,
				},
			})
		}
		return nil, err
	}

	uc.slots.Invalidate(ctx, created.Date)

	// Committed; notification is best-effort from here on.
	uc.notifier.Dispatch(notify.Event{
		Kind:        notify.EventConfirmed,
		To:          created.Client.Email,
		ClientName:  created.Client.Name,
		ServiceName: created.Service.Name,
		Date:        created.Date,
		Time:        created.Time,
	})

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCreated,
		Entity:   "appointment",
		EntityID: &created.ID,
	})

	return created, nil
}
