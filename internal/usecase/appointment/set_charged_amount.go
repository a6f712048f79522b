package appointment

import (
	"context"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

type SetChargedAmount struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewSetChargedAmount(
	repo domain.Repository,
	auditDispatcher *audit.Dispatcher,
) *SetChargedAmount {
	return &SetChargedAmount{
		repo:  repo,
		audit: auditDispatcher,
	}
}

// Execute overrides the price snapshot for one appointment, independent of
// the service's live price. Zero is a valid charge (courtesy treatments).
func (uc *SetChargedAmount) Execute(
	ctx context.Context,
	appointmentID uint,
	actorID *uint,
	amount float64,
) (*models.Appointment, error) {

	if amount < 0 {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	var updated *models.Appointment

	err := uc.repo.Transact(ctx, func(tx domain.Repository) error {

		ap, err := tx.GetAppointment(ctx, appointmentID)
		if err != nil {
			return err
		}

		previous := domain.ChargedValue(ap, &ap.Service)

		ap.ChargedAmount = &amount
		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}

		uc.audit.Dispatch(audit.Event{
			ActorID:  actorID,
			Action:   audit.ActionChargedAmountSet,
			Entity:   "appointment",
			EntityID: &ap.ID,
			Metadata: map[string]any{
				"previous": previous,
				"amount":   amount,
			},
		})

		updated = ap
		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}
