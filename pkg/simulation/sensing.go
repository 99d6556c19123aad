package simulation

// tally reduces a raw signal to per-id occurrence counts.
// order lists each id once, in the order of its first occurrence.
func tally(signal []int) (order []int, counts map[int]int) {
	counts = make(map[int]int, len(signal))
	for _, id := range signal {
		if counts[id] == 0 {
			order = append(order, id)
		}
		counts[id]++
	}
	return order, counts
}

// CountDistinct returns how many distinct objects reach the cell agent i stands on.
func (w *World) CountDistinct(i int) int {
	order, _ := tally(w.field.Sample(w.agents[i].Pos))
	return len(order)
}

// Closest returns the object whose signal is strongest at agent i's cell,
// or None if the cell is dark. Ties go to the id seen first.
func (w *World) Closest(i int) int {
	order, counts := tally(w.field.Sample(w.agents[i].Pos))
	highest, closest := -1, None
	for _, id := range order {
		if counts[id] > highest {
			highest = counts[id]
			closest = id
		}
	}
	return closest
}
