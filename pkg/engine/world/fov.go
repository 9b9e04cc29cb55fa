package world

// FOVRadius is the default field of view radius (Chebyshev distance).
// Symmetric in all 8 directions.
const FOVRadius = 5

// CalculateFOV calculates which cells are visible from a given cell within a
// radius. Uses a symmetric square (Chebyshev) sweep with Bresenham
// line-of-sight so coverage is equal in all directions. Walls and shut doors
// block visibility.
func CalculateFOV(grid *Grid, center *Cell, radius int) []*Cell {
	if center == nil || grid == nil {
		return nil
	}

	visible := []*Cell{center}
	centerRow, centerCol := center.Row, center.Col

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if chebyshevDist(dr, dc) > radius {
				continue
			}

			cell := grid.GetCell(centerRow+dr, centerCol+dc)
			if cell == nil {
				continue
			}

			if hasLineOfSight(grid, centerRow, centerCol, cell.Row, cell.Col) {
				visible = append(visible, cell)
			}
		}
	}

	return visible
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dr, dc).
func chebyshevDist(dr, dc int) int {
	absDr := dr
	if absDr < 0 {
		absDr = -absDr
	}
	absDc := dc
	if absDc < 0 {
		absDc = -absDc
	}
	if absDr > absDc {
		return absDr
	}
	return absDc
}

// hasLineOfSight returns true if there's a clear path from (r0,c0) to (r1,c1).
// Uses Bresenham's line algorithm; vision passes through the endpoints, so a
// wall or door is itself visible even though it blocks sight beyond it.
func hasLineOfSight(grid *Grid, r0, c0, r1, c1 int) bool {
	dr := r1 - r0
	dc := c1 - c0

	if dr == 0 && dc == 0 {
		return true
	}

	absDr := dr
	if absDr < 0 {
		absDr = -absDr
	}
	absDc := dc
	if absDc < 0 {
		absDc = -absDc
	}

	var stepR, stepC int
	if dr > 0 {
		stepR = 1
	} else if dr < 0 {
		stepR = -1
	}
	if dc > 0 {
		stepC = 1
	} else if dc < 0 {
		stepC = -1
	}

	r, c := r0, c0

	if absDr >= absDc {
		err := 2*absDc - absDr
		for r != r1 {
			r += stepR
			if err > 0 {
				c += stepC
				err -= 2 * absDr
			}
			err += 2 * absDc

			if r == r1 && c == c1 {
				return true
			}
			cell := grid.GetCell(r, c)
			if cell == nil || cell.Tile.BlocksSight() {
				return false
			}
		}
	} else {
		err := 2*absDr - absDc
		for c != c1 {
			c += stepC
			if err > 0 {
				r += stepR
				err -= 2 * absDc
			}
			err += 2 * absDr

			if r == r1 && c == c1 {
				return true
			}
			cell := grid.GetCell(r, c)
			if cell == nil || cell.Tile.BlocksSight() {
				return false
			}
		}
	}

	return true
}

// LineOfSight reports whether (r1,c1) can be seen from (r0,c0)
func LineOfSight(grid *Grid, r0, c0, r1, c1 int) bool {
	return hasLineOfSight(grid, r0, c0, r1, c1)
}

// RevealFOV marks all cells within FOV of the center cell as explored
func RevealFOV(grid *Grid, center *Cell, radius int) {
	for _, cell := range CalculateFOV(grid, center, radius) {
		cell.Explored = true
	}
}

// RevealFOVDefault reveals cells using the default FOV radius
func RevealFOVDefault(grid *Grid, center *Cell) {
	RevealFOV(grid, center, FOVRadius)
}
