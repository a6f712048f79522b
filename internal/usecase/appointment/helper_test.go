package appointment

import (
	"context"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BellezaEstetica/salon-scheduler/internal/audit"
	dbpkg "github.com/BellezaEstetica/salon-scheduler/internal/db"
	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
	infraRepo "github.com/BellezaEstetica/salon-scheduler/internal/infra/repository"
	"github.com/BellezaEstetica/salon-scheduler/internal/models"
	"github.com/BellezaEstetica/salon-scheduler/internal/notify"
)

// recordingNotifier captures dispatched events synchronously so tests can
// assert on them without sleeping.
type recordingNotifier struct {
	mu     sync.Mutex
	events []notify.Event
}

func (n *recordingNotifier) Dispatch(ev notify.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, ev)
}

func (n *recordingNotifier) byKind(kind notify.EventKind) []notify.Event {
	n.mu.Lock()
	defer n.mu.Unlock()

	var out []notify.Event
	for _, ev := range n.events {
		if ev.Kind == kind {
			out = append(out, ev)
		}
	}
	return out
}

// memSlotCache is an in-process SlotCache for cache-interaction tests.
type memSlotCache struct {
	mu      sync.Mutex
	entries map[string][]string
}

func newMemSlotCache() *memSlotCache {
	return &memSlotCache{entries: map[string][]string{}}
}

func (c *memSlotCache) Get(_ context.Context, date string) ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	slots, ok := c.entries[date]
	return slots, ok
}

func (c *memSlotCache) Set(_ context.Context, date string, slots []string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[date] = slots
}

func (c *memSlotCache) Invalidate(_ context.Context, dates ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, d := range dates {
		delete(c.entries, d)
	}
}

type testEnv struct {
	db       *gorm.DB
	repo     domain.Repository
	notifier *recordingNotifier
	cache    *memSlotCache

	createUC     *CreateAppointment
	rescheduleUC *RescheduleAppointment
	cancelUC     *CancelAppointment
	completeUC   *CompleteAppointment
	chargedUC    *SetChargedAmount
	freeSlotsUC  *FreeSlots
	listUC       *ListAppointments
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
	})
	require.NoError(t, err)

	// One connection so every session sees the same in-memory database.
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, dbpkg.Migrate(gdb))

	repo := infraRepo.NewAppointmentGormRepository(gdb)
	notifier := &recordingNotifier{}
	slots := newMemSlotCache()
	auditDispatcher := audit.NewDispatcher(audit.New(gdb), zap.NewNop())
	grid := domain.DefaultGrid()

	return &testEnv{
		db:       gdb,
		repo:     repo,
		notifier: notifier,
		cache:    slots,

		createUC:     NewCreateAppointment(repo, grid, notifier, slots, auditDispatcher),
		rescheduleUC: NewRescheduleAppointment(repo, grid, notifier, slots, auditDispatcher),
		cancelUC:     NewCancelAppointment(repo, notifier, slots, auditDispatcher),
		completeUC:   NewCompleteAppointment(repo, auditDispatcher),
		chargedUC:    NewSetChargedAmount(repo, auditDispatcher),
		freeSlotsUC:  NewFreeSlots(repo, grid, slots),
		listUC:       NewListAppointments(repo),
	}
}

func (e *testEnv) seedService(t *testing.T, name string, price float64) *models.Service {
	t.Helper()

	svc := &models.Service{
		Name:        name,
		DurationMin: 30,
		Price:       price,
		Active:      true,
	}
	require.NoError(t, e.db.Create(svc).Error)
	return svc
}

func (e *testEnv) book(t *testing.T, svc *models.Service, email, date, slot string) *models.Appointment {
	t.Helper()

	ap, err := e.createUC.Execute(context.Background(), CreateAppointmentInput{
		ClientName:  "Maria Silva",
		ClientEmail: email,
		ClientPhone: "11999990000",
		ServiceID:   svc.ID,
		Date:        date,
		Time:        slot,
	})
	require.NoError(t, err)
	return ap
}

func (e *testEnv) reload(t *testing.T, id uint) *models.Appointment {
	t.Helper()

	var ap models.Appointment
	require.NoError(t, e.db.First(&ap, id).Error)
	return &ap
}
