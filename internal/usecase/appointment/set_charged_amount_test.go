package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BellezaEstetica/salon-scheduler/internal/httperr"
)

func TestSetChargedAmount(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t, "Massagem", 200)
	ctx := context.Background()

	ap := env.book(t, svc, "maria@example.com", "2026-09-10", "16:00")

	actor := uint(1)
	updated, err := env.chargedUC.Execute(ctx, ap.ID, &actor, 180)
	require.NoError(t, err)
	require.NotNil(t, updated.ChargedAmount)
	assert.Equal(t, 180.0, *updated.ChargedAmount)

	stored := env.reload(t, ap.ID)
	require.NotNil(t, stored.ChargedAmount)
	assert.Equal(t, 180.0, *stored.ChargedAmount)
}

func TestSetChargedAmountZeroIsValid(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t, "Massagem", 200)
	ctx := context.Background()

	ap := env.book(t, svc, "maria@example.com", "2026-09-10", "16:00")

	// Courtesy treatment: charged nothing, still recorded.
	updated, err := env.chargedUC.Execute(ctx, ap.ID, nil, 0)
	require.NoError(t, err)
	require.NotNil(t, updated.ChargedAmount)
	assert.Equal(t, 0.0, *updated.ChargedAmount)
}

func TestSetChargedAmountNegativeRejected(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t, "Massagem", 200)
	ctx := context.Background()

	ap := env.book(t, svc, "maria@example.com", "2026-09-10", "16:00")

	_, err := env.chargedUC.Execute(ctx, ap.ID, nil, -5)
	assert.True(t, httperr.IsValidation(err))

	// The snapshot from booking time is untouched.
	stored := env.reload(t, ap.ID)
	require.NotNil(t, stored.ChargedAmount)
	assert.Equal(t, 200.0, *stored.ChargedAmount)
}

func TestSetChargedAmountUnknownAppointment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.chargedUC.Execute(context.Background(), 42, nil, 50)
	assert.True(t, httperr.IsNotFound(err))
}
