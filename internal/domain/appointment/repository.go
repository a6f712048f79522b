package appointment

import (
	"context"

	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

// Filter narrows appointment listings. Zero fields are ignored; the
// implementation must translate them into parameterized predicates.
type Filter struct {
	Date        string // "YYYY-MM-DD"
	ClientID    uint   // exact match, used to scope clients to their own rows
	ClientEmail string
	ClientName  string // substring match
}

type Repository interface {
	// Transact runs fn against a repository bound to one transaction.
	// Any error rolls the whole unit back.
	Transact(ctx context.Context, fn func(Repository) error) error

	// -------- Service --------
	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Client --------
	GetOrCreateClient(
		ctx context.Context,
		name string,
		email string,
		phone string,
	) (*models.Client, error)

	// -------- Appointment (create / conflict) --------
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// AssertSlotFree fails with a slot_conflict business error when a
	// non-cancelled appointment other than excludeID occupies (date, slot).
	// Must be called inside Transact so the check and the subsequent write
	// form one atomic unit.
	AssertSlotFree(
		ctx context.Context,
		date string,
		slot string,
		excludeID uint,
	) error

	// -------- Appointment (state change) --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Occupancy / listings --------
	ListTakenSlots(
		ctx context.Context,
		date string,
		excludeID uint,
	) ([]string, error)

	ListAppointments(
		ctx context.Context,
		f Filter,
	) ([]models.Appointment, error)
}
