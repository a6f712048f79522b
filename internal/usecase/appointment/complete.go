package appointment

import (
	"context"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
	"github.com/BellezaEstetica/salon-scheduler/internal/timezone"
)

type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCompleteAppointment(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute marks work performed. Billing is finalized by the charged snapshot;
// no notification is sent.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
) (*models.Appointment, error) {

	var completed *models.Appointment

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}

		if err := domain.Complete(ap, timezone.Now()); err != nil {
			return err
		}

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		completed = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		Action:   audit.ActionAppointmentCompleted,
		Entity:   "appointment",
		EntityID: &completed.ID,
	})

	return completed, nil
}
