// Package grid provides the immutable flight model for drone grid routing:
// building elevations, battery limits, recharge pads, and the single-move
// cost rule consumed by the search engine.
package grid

// New constructs a Grid from a non-empty, rectangular elevation matrix, a
// battery capacity B, a recharge amount K, and the recharge pad coordinates.
// It deep-copies the elevations to ensure immutability and collapses
// duplicate pad coordinates to one entry.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrNegativeElevation,
// ErrBadCapacity, ErrBadRecharge, or ErrStationOutOfBounds on invalid input.
// Algorithmic complexity: O(N×M + S) time and memory.
func New(elev [][]int64, capacity, recharge int64, stations []Coord) (*Grid, error) {
	if len(elev) == 0 || len(elev[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(elev), len(elev[0])
	for _, row := range elev {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
		for _, h := range row {
			if h < 0 {
				return nil, ErrNegativeElevation
			}
		}
	}
	if capacity <= 0 {
		return nil, ErrBadCapacity
	}
	if recharge <= 0 {
		return nil, ErrBadRecharge
	}
	// Deep copy to prevent external mutation
	cells := make([][]int64, rows)
	for r := 0; r < rows; r++ {
		cells[r] = make([]int64, cols)
		copy(cells[r], elev[r])
	}
	// Duplicate pads collapse naturally in the set.
	pads := make(map[Coord]struct{}, len(stations))
	for _, s := range stations {
		if s.Row < 0 || s.Row >= rows || s.Col < 0 || s.Col >= cols {
			return nil, ErrStationOutOfBounds
		}
		pads[s] = struct{}{}
	}
	g := &Grid{
		rows:     rows,
		cols:     cols,
		capacity: capacity,
		recharge: recharge,
		elev:     cells,
		stations: pads,
	}

	return g, nil
}

// InBounds reports whether (row,col) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// Elevation returns the building height at (row,col).
// The coordinate must be in bounds. Complexity: O(1).
func (g *Grid) Elevation(row, col int) int64 {
	return g.elev[row][col]
}

// IsStation reports whether (row,col) carries a recharge pad.
// Complexity: O(1).
func (g *Grid) IsStation(row, col int) bool {
	_, ok := g.stations[Coord{Row: row, Col: col}]

	return ok
}

// Start returns the origin State: cell (0,0) with a full battery, hovering
// at the origin building's own elevation. No climb is charged for the
// starting cell itself — ascent cost only ever results from moving into a
// taller building. Complexity: O(1).
func (g *Grid) Start() State {
	return State{
		Row:      0,
		Col:      0,
		Battery:  g.capacity,
		Altitude: g.elev[0][0],
	}
}

// Goal returns the destination coordinate: the bottom-right cell.
// Complexity: O(1).
func (g *Grid) Goal() Coord {
	return Coord{Row: g.rows - 1, Col: g.cols - 1}
}

// Move answers, for the state s and the axis-aligned offset (dr,dc),
// whether the step is legal, and if so returns the resulting State and the
// time cost of the step. The battery cost always equals the time cost.
//
// Rule, in order:
//  1. The target cell must be in bounds.
//  2. Base cost is 1 time and 1 battery unit.
//  3. If the target elevation exceeds s.Altitude, the climb
//     (elevation − altitude) is added to both time and battery, and the
//     resulting altitude becomes that elevation. Lower or equal buildings
//     are overflown at unchanged altitude with no extra cost.
//  4. If the resulting battery would be negative, the move is illegal.
//  5. If the target cell carries a recharge pad, the battery is then raised
//     to min(capacity, battery+recharge). Applied on every visit.
//
// Move is purely functional: it never mutates the Grid or s.
// Complexity: O(1).
func (g *Grid) Move(s State, dr, dc int) (State, int64, bool) {
	row, col := s.Row+dr, s.Col+dc
	if !g.InBounds(row, col) {
		return State{}, 0, false
	}

	cost := int64(1)
	battery := s.Battery - 1
	altitude := s.Altitude

	// Climb only if the next building is taller than the current altitude.
	if h := g.elev[row][col]; h > altitude {
		climb := h - altitude
		cost += climb
		battery -= climb
		altitude = h
	}

	if battery < 0 {
		return State{}, 0, false
	}

	if g.IsStation(row, col) {
		battery += g.recharge
		if battery > g.capacity {
			battery = g.capacity
		}
	}

	next := State{
		Row:      row,
		Col:      col,
		Battery:  battery,
		Altitude: altitude,
	}

	return next, cost, true
}
