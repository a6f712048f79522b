package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BellezaEstetica/salon-scheduler/internal/models"
)

func TestChargedValue(t *testing.T) {
	snapshot := 100.0
	zero := 0.0
	svc := &models.Service{Price: 150}

	tests := []struct {
		name string
		ap   *models.Appointment
		svc  *models.Service
		want float64
	}{
		{"snapshot wins over live price", &models.Appointment{ChargedAmount: &snapshot}, svc, 100},
		{"zero snapshot is a valid charge", &models.Appointment{ChargedAmount: &zero}, svc, 0},
		{"legacy row falls back to service price", &models.Appointment{}, svc, 150},
		{"no snapshot and no service", &models.Appointment{}, nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ChargedValue(tt.ap, tt.svc))
		})
	}
}

func TestSnapshot(t *testing.T) {
	svc := &models.Service{Price: 80}
	ap := &models.Appointment{}

	Snapshot(ap, svc)
	require.NotNil(t, ap.ChargedAmount)
	assert.Equal(t, 80.0, *ap.ChargedAmount)

	// The snapshot is a copy, not an alias of the live price.
	svc.Price = 120
	assert.Equal(t, 80.0, *ap.ChargedAmount)
}
