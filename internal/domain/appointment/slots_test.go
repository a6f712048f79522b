package appointment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlotGridLabels(t *testing.T) {
	labels := DefaultGrid().Labels()

	require.Len(t, labels, 20)
	assert.Equal(t, "08:00", labels[0])
	assert.Equal(t, "08:30", labels[1])
	assert.Equal(t, "17:30", labels[len(labels)-1])

	// Chronological and zero-padded throughout.
	for i := 1; i < len(labels); i++ {
		assert.Less(t, labels[i-1], labels[i])
		assert.Len(t, labels[i], 5)
	}
}

func TestSlotGridContains(t *testing.T) {
	grid := DefaultGrid()

	tests := []struct {
		label string
		want  bool
	}{
		{"08:00", true},
		{"17:30", true},
		{"12:30", true},
		{"18:00", false}, // closing time is exclusive
		{"07:30", false},
		{"08:15", false}, // off-grid
		{"8:00", false},  // not zero-padded
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, grid.Contains(tt.label))
		})
	}
}

func TestSlotGridFree(t *testing.T) {
	grid := DefaultGrid()

	free := grid.Free([]string{"08:00", "14:30"})
	assert.Len(t, free, 18)
	assert.NotContains(t, free, "08:00")
	assert.NotContains(t, free, "14:30")
	assert.Contains(t, free, "08:30")

	// Unknown taken labels are ignored.
	assert.Len(t, grid.Free([]string{"99:99"}), 20)

	// Fully booked day yields an empty, non-nil list.
	all := grid.Free(grid.Labels())
	require.NotNil(t, all)
	assert.Empty(t, all)
}

func TestSlotGridCustomWindow(t *testing.T) {
	grid := SlotGrid{OpenHour: 9, CloseHour: 12, StepMinutes: 60}

	assert.Equal(t, []string{"09:00", "10:00", "11:00"}, grid.Labels())
	assert.False(t, grid.Contains("12:00"))
}
