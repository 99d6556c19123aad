package simulation

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTally(t *testing.T) {
	order, counts := tally([]int{3, 1, 1, 3, 7, 1})

	if diff := cmp.Diff([]int{3, 1, 7}, order); diff != "" {
		t.Errorf("order mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[int]int{3: 2, 1: 3, 7: 1}, counts); diff != "" {
		t.Errorf("counts mismatch (-want +got):\n%s", diff)
	}

	order, counts = tally(nil)
	if len(order) != 0 || len(counts) != 0 {
		t.Errorf("tally(nil) = %v, %v; want empty", order, counts)
	}
}

func TestSensing_DarkCell(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	placeObject(w, 0, 50, 50)
	w.field.Rebuild(w.objects)

	for _, pos := range [][2]float64{{50, 50}, {10, 10}, {50, 55}} {
		placeAgent(w, 0, pos[0], pos[1])
		if got := w.CountDistinct(0); got != 0 {
			t.Errorf("CountDistinct at %v = %d; want 0", pos, got)
		}
		if got := w.Closest(0); got != None {
			t.Errorf("Closest at %v = %d; want None", pos, got)
		}
	}
}

func TestSensing_SingleObject(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	placeObject(w, 0, 50, 50)
	w.field.Rebuild(w.objects)

	placeAgent(w, 0, 51, 50)
	if got := w.CountDistinct(0); got != 1 {
		t.Errorf("CountDistinct = %d; want 1", got)
	}
	if got := w.Closest(0); got != 0 {
		t.Errorf("Closest = %d; want 0", got)
	}
}

func TestSensing_StrongestSignalWins(t *testing.T) {
	cfg := smallConfig()
	cfg.NumObjects = 2
	w := newTestWorld(t, cfg)
	placeObject(w, 0, 50, 50)
	placeObject(w, 1, 53, 50)
	w.field.Rebuild(w.objects)

	tests := []struct {
		x, y    float64
		closest int
	}{
		{51, 50, 0}, // 14 stamps of 0, 8 of 1
		{52, 50, 1}, // 14 stamps of 1, 8 of 0; 0 is seen first but loses
	}
	for _, tt := range tests {
		placeAgent(w, 0, tt.x, tt.y)
		if got := w.CountDistinct(0); got != 2 {
			t.Errorf("CountDistinct at (%v,%v) = %d; want 2", tt.x, tt.y, got)
		}
		if got := w.Closest(0); got != tt.closest {
			t.Errorf("Closest at (%v,%v) = %d; want %d", tt.x, tt.y, got, tt.closest)
		}
	}
}

func TestSensing_TieGoesToFirstSeen(t *testing.T) {
	cfg := smallConfig()
	cfg.NumObjects = 4
	w := newTestWorld(t, cfg)
	placeAgent(w, 0, 20, 30)
	idx := 20*cfg.WorldHeight + 30

	tests := []struct {
		signal  []int
		closest int
	}{
		{[]int{3, 1, 1, 3}, 3},
		{[]int{1, 3, 3, 1}, 1},
		{[]int{2, 0, 0}, 0},
		{[]int{2}, 2},
	}
	for _, tt := range tests {
		w.field.cells[idx] = tt.signal
		if got := w.Closest(0); got != tt.closest {
			t.Errorf("Closest(%v) = %d; want %d", tt.signal, got, tt.closest)
		}
	}
}

func TestSensing_RoundsPosition(t *testing.T) {
	w := newTestWorld(t, smallConfig())
	placeObject(w, 0, 50, 50)
	w.field.Rebuild(w.objects)

	// rounds to (51, 50), which is lit
	placeAgent(w, 0, 50.5, 49.5)
	if got := w.CountDistinct(0); got != 1 {
		t.Errorf("CountDistinct at (50.5, 49.5) = %d; want 1", got)
	}
	// rounds to (50, 50), which is dark
	placeAgent(w, 0, 50.4, 50.4)
	if got := w.CountDistinct(0); got != 0 {
		t.Errorf("CountDistinct at (50.4, 50.4) = %d; want 0", got)
	}
}
