package appointment

import "fmt"

// ===============================
// Slot Calendar
// ===============================

// SlotGrid describes the bookable window of a business day. Slots run from
// OpenHour (inclusive) to CloseHour (exclusive) every StepMinutes.
type SlotGrid struct {
	OpenHour    int
	CloseHour   int
	StepMinutes int
}

func DefaultGrid() SlotGrid {
	return SlotGrid{OpenHour: 8, CloseHour: 18, StepMinutes: 30}
}

// Labels returns every slot label of the grid in chronological order,
// zero-padded ("08:00", "08:30", ...).
func (g SlotGrid) Labels() []string {
	var labels []string
	for minutes := g.OpenHour * 60; minutes < g.CloseHour*60; minutes += g.StepMinutes {
		labels = append(labels, fmt.Sprintf("%02d:%02d", minutes/60, minutes%60))
	}
	return labels
}

// Contains reports whether the label is a valid slot of the grid.
func (g SlotGrid) Contains(label string) bool {
	for _, l := range g.Labels() {
		if l == label {
			return true
		}
	}
	return false
}

// Free classifies the grid against the given taken labels and returns the
// free ones in chronological order.
func (g SlotGrid) Free(taken []string) []string {
	occupied := make(map[string]struct{}, len(taken))
	for _, t := range taken {
		occupied[t] = struct{}{}
	}

	free := []string{}
	for _, label := range g.Labels() {
		if _, ok := occupied[label]; !ok {
			free = append(free, label)
		}
	}
	return free
}
