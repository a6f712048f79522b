package repository

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Transaction boundary
// --------------------------------------------------

func (r *AppointmentGormRepository) Transact(
	ctx context.Context,
	fn func(domain.Repository) error,
) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&AppointmentGormRepository{db: tx})
	})
}

// --------------------------------------------------
// Service
// --------------------------------------------------

func (r *AppointmentGormRepository) GetService(
	ctx context.Context,
	id uint,
) (*models.Service, error) {

	var svc models.Service
	if err := r.db.WithContext(ctx).First(&svc, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}
	return &svc, nil
}

// --------------------------------------------------
// Client
// --------------------------------------------------

func (r *AppointmentGormRepository) GetOrCreateClient(
	ctx context.Context,
	name string,
	email string,
	phone string,
) (*models.Client, error) {

	var client models.Client
	err := r.db.WithContext(ctx).
		Where("email = ?", email).
		First(&client).Error

	if err == nil {
		return &client, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	client = models.Client{
		Name:  name,
		Email: email,
		Phone: phone,
	}

	if err := r.db.WithContext(ctx).Create(&client).Error; err != nil {
		return nil, err
	}

	return &client, nil
}

// --------------------------------------------------
// Appointment (create / conflict)
// --------------------------------------------------

func (r *AppointmentGormRepository) AssertSlotFree(
	ctx context.Context,
	date string,
	slot string,
	excludeID uint,
) error {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND time = ? AND status <> ?",
			date, slot, string(domain.StatusCancelled),
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	// Row lock so two concurrent transactions cannot both observe "free".
	// SQLite (tests) has no FOR UPDATE; its writers serialize on the
	// database lock instead.
	if r.db.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}

	return nil
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Create(ap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		// Safety-net unique index on active (date, time) fired.
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointment(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		First(&ap, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness(httperr.CodeNotFound)
		}
		return nil, err
	}

	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	err := r.db.WithContext(ctx).Save(ap).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return httperr.ErrBusiness(httperr.CodeSlotConflict)
	}
	return err
}

// --------------------------------------------------
// Occupancy / listings
// --------------------------------------------------

func (r *AppointmentGormRepository) ListTakenSlots(
	ctx context.Context,
	date string,
	excludeID uint,
) ([]string, error) {

	q := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where(
			"date = ? AND status <> ?",
			date, string(domain.StatusCancelled),
		)

	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}

	var taken []string
	if err := q.Order("time ASC").Pluck("time", &taken).Error; err != nil {
		return nil, err
	}

	return taken, nil
}

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	f domain.Filter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Client").
		Preload("Service").
		Joins("JOIN clients ON clients.id = appointments.client_id")

	if f.Date != "" {
		q = q.Where("appointments.date = ?", f.Date)
	}
	if f.ClientID != 0 {
		q = q.Where("appointments.client_id = ?", f.ClientID)
	}
	if f.ClientEmail != "" {
		q = q.Where("clients.email = ?", f.ClientEmail)
	}
	if f.ClientName != "" {
		like := "%" + strings.ToLower(f.ClientName) + "%"
		q = q.Where("LOWER(clients.name) LIKE ?", like)
	}

	var aps []models.Appointment
	if err := q.
		Order("appointments.date ASC, appointments.time ASC").
		Find(&aps).Error; err != nil {
		return nil, err
	}

	return aps, nil
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
