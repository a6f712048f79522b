package appointment

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/BellezaEstetica/salon-scheduler/internal/domain/appointment"
)

func TestListAppointments(t *testing.T) {
	env := newTestEnv(t)
	svc := env.seedService(t, "Corte", 70)
	ctx := context.Background()

	env.book(t, svc, "maria@example.com", "2026-09-11", "09:00")
	env.book(t, svc, "maria@example.com", "2026-09-10", "14:00")
	env.book(t, svc, "joana@example.com", "2026-09-10", "09:00")

	t.Run("unfiltered, chronological", func(t *testing.T) {
		aps, err := env.listUC.Execute(ctx, domain.Filter{})
		require.NoError(t, err)
		require.Len(t, aps, 3)

		assert.Equal(t, "2026-09-10", aps[0].Date)
		assert.Equal(t, "09:00", aps[0].Time)
		assert.Equal(t, "14:00", aps[1].Time)
		assert.Equal(t, "2026-09-11", aps[2].Date)

		// Associations come preloaded for the admin listing.
		assert.Equal(t, "Corte", aps[0].Service.Name)
		assert.NotEmpty(t, aps[0].Client.Email)
	})

	t.Run("by date", func(t *testing.T) {
		aps, err := env.listUC.Execute(ctx, domain.Filter{Date: "2026-09-10"})
		require.NoError(t, err)
		assert.Len(t, aps, 2)
	})

	t.Run("by client email", func(t *testing.T) {
		aps, err := env.listUC.Execute(ctx, domain.Filter{ClientEmail: "joana@example.com"})
		require.NoError(t, err)
		require.Len(t, aps, 1)
		assert.Equal(t, "joana@example.com", aps[0].Client.Email)
	})

	t.Run("by name substring, case-insensitive", func(t *testing.T) {
		aps, err := env.listUC.Execute(ctx, domain.Filter{ClientName: "mArIa"})
		require.NoError(t, err)
		assert.Len(t, aps, 3) // helper books everyone as "Maria Silva"
	})

	t.Run("no matches", func(t *testing.T) {
		aps, err := env.listUC.Execute(ctx, domain.Filter{Date: "2030-01-01"})
		require.NoError(t, err)
		assert.Empty(t, aps)
	})
}
