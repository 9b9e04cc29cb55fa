package autopilot

import (
	"container/heap"
)

// routeNeighbor is one of the eight step offsets
type routeNeighbor struct {
	row      int
	col      int
	diagonal bool
}

// Cardinals first so equal-cost routes prefer straight steps
var routeNeighborOffsets = [...]routeNeighbor{
	{row: -1, col: 0},
	{row: 0, col: 1},
	{row: 1, col: 0},
	{row: 0, col: -1},
	{row: -1, col: 1, diagonal: true},
	{row: 1, col: 1, diagonal: true},
	{row: 1, col: -1, diagonal: true},
	{row: -1, col: -1, diagonal: true},
}

// StepCost returns the number of turns needed to enter a cell of the given
// terrain, and whether entering is possible at all. A closed door costs an
// extra turn to open; a locked door costs an extra turn with a key or three
// extra with a lockpick, and cannot be entered with neither.
func StepCost(w World, t Terrain) (int, bool) {
	switch t {
	case TerrainOpen:
		return 1, true
	case TerrainClosedDoor:
		return 2, true
	case TerrainLockedDoor:
		if w.HasKey() {
			return 2, true
		}
		if w.HasLockpick() {
			return 4, true
		}
		return 0, false
	default:
		return 0, false
	}
}

// enterable reports whether the route may pass through p. Known traps and
// the explored-only constraint are both waived at the goal cell, so a route
// can end on a trap the player insists on, or on a freshly revealed tile.
func enterable(w World, p, goal Point, requireExplored bool) bool {
	if !w.InBounds(p) {
		return false
	}
	if _, ok := StepCost(w, w.Terrain(p)); !ok {
		return false
	}
	if w.TrapKnown(p) && p != goal {
		return false
	}
	if w.OccupantAt(p) == OccupantHostile {
		return false
	}
	if requireExplored && !w.Explored(p) && p != goal {
		return false
	}
	return true
}

// routeNode is a priority queue entry for the route search
type routeNode struct {
	p     Point
	cost  int
	seq   int
	index int
}

// routeQueue orders nodes by total cost, breaking ties by insertion order
// so results are stable
type routeQueue []*routeNode

func (rq routeQueue) Len() int { return len(rq) }

func (rq routeQueue) Less(i, j int) bool {
	if rq[i].cost != rq[j].cost {
		return rq[i].cost < rq[j].cost
	}
	return rq[i].seq < rq[j].seq
}

func (rq routeQueue) Swap(i, j int) {
	rq[i], rq[j] = rq[j], rq[i]
	rq[i].index = i
	rq[j].index = j
}

func (rq *routeQueue) Push(x any) {
	n := len(*rq)
	item := x.(*routeNode)
	item.index = n
	*rq = append(*rq, item)
}

func (rq *routeQueue) Pop() any {
	old := *rq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*rq = old[:n-1]
	return item
}

// FindRoute returns the minimum-total-cost route from start to goal,
// inclusive of both, over the 8-connected grid. Edge weight into a cell is
// its step cost. When requireExplored is set, unexplored cells are excluded
// except for the goal itself. Returns nil when no route exists; start==goal
// degenerates to a single-element route.
//
// Dijkstra with flat per-cell bookkeeping indexed row*cols+col; no per-node
// graph allocation.
func FindRoute(w World, start, goal Point, requireExplored bool) []Point {
	if !w.InBounds(start) || !w.InBounds(goal) {
		return nil
	}
	if start == goal {
		return []Point{start}
	}

	rows, cols := w.Size()
	size := rows * cols
	dist := make([]int, size)
	prev := make([]int, size)
	settled := make([]bool, size)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}

	index := func(p Point) int { return p.Row*cols + p.Col }

	open := &routeQueue{}
	heap.Init(open)
	seq := 0
	dist[index(start)] = 0
	heap.Push(open, &routeNode{p: start, cost: 0, seq: seq})

	for open.Len() > 0 {
		current := heap.Pop(open).(*routeNode)
		currIdx := index(current.p)
		if settled[currIdx] {
			continue
		}
		settled[currIdx] = true

		if current.p == goal {
			return unwindRoute(prev, cols, start, goal)
		}

		for _, delta := range routeNeighborOffsets {
			next := Point{Row: current.p.Row + delta.row, Col: current.p.Col + delta.col}
			if !enterable(w, next, goal, requireExplored) {
				continue
			}
			if delta.diagonal && !w.DiagonalOpen(current.p, next) {
				continue
			}
			cost, _ := StepCost(w, w.Terrain(next))
			nextIdx := index(next)
			if settled[nextIdx] {
				continue
			}
			tentative := current.cost + cost
			if dist[nextIdx] != -1 && tentative >= dist[nextIdx] {
				continue
			}
			dist[nextIdx] = tentative
			prev[nextIdx] = currIdx
			seq++
			heap.Push(open, &routeNode{p: next, cost: tentative, seq: seq})
		}
	}

	return nil
}

// unwindRoute rebuilds the start→goal route from the predecessor table
func unwindRoute(prev []int, cols int, start, goal Point) []Point {
	route := []Point{goal}
	for idx := prev[goal.Row*cols+goal.Col]; idx != -1; idx = prev[idx] {
		route = append(route, Point{Row: idx / cols, Col: idx % cols})
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	if route[0] != start {
		return nil
	}
	return route
}
