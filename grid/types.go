// Package grid defines core types and sentinel errors for the drone
// flight model: the elevation grid, recharge pads, and the search state.
package grid

import "errors"

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates the elevation matrix has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: elevation matrix must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeElevation indicates a building elevation below zero.
	ErrNegativeElevation = errors.New("grid: elevations must be non-negative")
	// ErrBadCapacity indicates a non-positive battery capacity B.
	ErrBadCapacity = errors.New("grid: battery capacity must be positive")
	// ErrBadRecharge indicates a non-positive recharge amount K.
	ErrBadRecharge = errors.New("grid: recharge amount must be positive")
	// ErrStationOutOfBounds indicates a recharge pad outside the grid.
	ErrStationOutOfBounds = errors.New("grid: recharge pad coordinates out of bounds")
)

// Coord addresses a single cell by zero-based row and column.
type Coord struct {
	Row, Col int
}

// State is the unit of search identity: a cell position together with the
// remaining battery and the current flying altitude. Two States are distinct
// if any field differs — the same cell may be revisited many times with
// different battery/altitude combinations, and each unlocks a different set
// of future moves. State is a comparable value type, fit for use as a map key.
type State struct {
	Row, Col int   // cell position, zero-based
	Battery  int64 // remaining energy, 0..capacity
	Altitude int64 // current flying height; never decreases along a route
}

// Grid is the immutable flight model: building elevations, battery limits,
// and recharge pads. Construct it with New; it is read-only thereafter and
// safe for concurrent use by any number of searches.
type Grid struct {
	rows, cols int
	capacity   int64 // B: maximum battery charge
	recharge   int64 // K: battery restored per recharge-pad visit
	elev       [][]int64
	stations   map[Coord]struct{}
}

// Rows returns the number of grid rows. Complexity: O(1).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of grid columns. Complexity: O(1).
func (g *Grid) Cols() int { return g.cols }

// Capacity returns the battery capacity B. Complexity: O(1).
func (g *Grid) Capacity() int64 { return g.capacity }

// Recharge returns the per-visit recharge amount K. Complexity: O(1).
func (g *Grid) Recharge() int64 { return g.recharge }

// Stations returns the number of distinct recharge pads. Complexity: O(1).
func (g *Grid) Stations() int { return len(g.stations) }
