package appointment

import (
	"context"

	"github.com/BellezaEstetica/salon-scheduler/internal/cache"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/timezone"
)

type FreeSlots struct {
	repo  domain.Repository
	grid  domain.SlotGrid
	slots cache.SlotCache
}

func NewFreeSlots(
	repo domain.Repository,
	grid domain.SlotGrid,
	slots cache.SlotCache,
) *FreeSlots {
	return &FreeSlots{
		repo:  repo,
		grid:  grid,
		slots: slots,
	}
}

// Execute lists the free slot labels of a day in chronological order.
// excludeAppointmentID removes that appointment from occupancy so a
// reschedule does not block itself; those requests bypass the cache.
func (uc *FreeSlots) Execute(
	ctx context.Context,
	date string,
	excludeAppointmentID uint,
) ([]string, error) {

	if date == "" {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}
	if _, err := timezone.ParseDate(date); err != nil {
		return nil, httperr.ErrBusiness(httperr.CodeValidation)
	}

	if excludeAppointmentID == 0 {
		if free, ok := uc.slots.Get(ctx, date); ok {
			return free, nil
		}
	}

	taken, err := uc.repo.ListTakenSlots(ctx, date, excludeAppointmentID)
	if err != nil {
		return nil, err
	}

	free := uc.grid.Free(taken)

	if excludeAppointmentID == 0 {
		uc.slots.Set(ctx, date, free)
	}

	return free, nil
}
