package autopilot

// explorable reports whether auto-exploration may walk through p: the cell
// must already be explored, enterable (an unlockable locked door counts),
// free of known traps and not held by a hostile.
func explorable(w World, p Point) bool {
	if !w.InBounds(p) || !w.Explored(p) {
		return false
	}
	if _, ok := StepCost(w, w.Terrain(p)); !ok {
		return false
	}
	if w.TrapKnown(p) {
		return false
	}
	if w.OccupantAt(p) == OccupantHostile {
		return false
	}
	return true
}

// isFrontier reports whether p touches unexplored terrain: at least one of
// its in-bounds 8-neighbours has never been seen
func isFrontier(w World, p Point) bool {
	for _, delta := range routeNeighborOffsets {
		next := Point{Row: p.Row + delta.row, Col: p.Col + delta.col}
		if w.InBounds(next) && !w.Explored(next) {
			return true
		}
	}
	return false
}

// FindFrontier returns the explored, enterable cell nearest to start that
// has at least one unexplored 8-neighbour, or false when the whole reachable
// map has been seen. Nearest means fewest steps: the search is an unweighted
// BFS, deliberately ignoring door turn-costs — the route walked afterwards
// uses the real weighted costs. The start cell itself is never returned.
func FindFrontier(w World, start Point) (Point, bool) {
	if !w.InBounds(start) {
		return Point{}, false
	}

	rows, cols := w.Size()
	visited := make([]bool, rows*cols)
	index := func(p Point) int { return p.Row*cols + p.Col }

	queue := []Point{start}
	visited[index(start)] = true

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current != start && isFrontier(w, current) {
			return current, true
		}

		for _, delta := range routeNeighborOffsets {
			next := Point{Row: current.Row + delta.row, Col: current.Col + delta.col}
			if !w.InBounds(next) || visited[index(next)] {
				continue
			}
			if !explorable(w, next) {
				continue
			}
			if delta.diagonal && !w.DiagonalOpen(current, next) {
				continue
			}
			visited[index(next)] = true
			queue = append(queue, next)
		}
	}

	return Point{}, false
}
