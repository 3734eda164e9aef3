// Package flight defines core types and configuration options for the
// drone flight-time search engine.
//
// The engine computes the minimum time for a drone to travel from the
// top-left to the bottom-right cell of an elevation grid, expanding a
// state space of (row, col, battery, altitude) tuples with a generalized
// Dijkstra search.
//
// Options:
//
//	– MaxTime:   cap on arrival times to explore; states beyond it are skipped.
//	– MaxStates: cap on distinct states recorded before aborting with ErrStateLimit.
//
// Errors (sentinel):
//
//	– ErrNilGrid     if the provided grid pointer is nil.
//	– ErrStateLimit  if the search discovers more states than MaxStates allows.
//	– ErrBadMaxTime    (via panic) if MaxTime is set to a negative value.
//	– ErrBadStateLimit (via panic) if MaxStates is set to a non-positive value.
package flight

import (
	"errors"
	"math"
)

// Unreachable is the sentinel reported as Result.Time when no route from
// origin to destination exists within the battery and option limits.
// Unreachability is a defined, successful outcome, not an error.
const Unreachable int64 = -1

// Sentinel errors returned by the search engine.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed to MinFlightTime.
	ErrNilGrid = errors.New("flight: grid is nil")

	// ErrStateLimit indicates the search recorded more distinct states than
	// the configured MaxStates cap allows.
	ErrStateLimit = errors.New("flight: state limit exceeded")

	// ErrBadMaxTime indicates that MaxTime was set to a negative value,
	// which is not meaningful for a time threshold.
	ErrBadMaxTime = errors.New("flight: MaxTime must be non-negative")

	// ErrBadStateLimit indicates that MaxStates was set to zero or a negative
	// value, which would forbid even the origin state.
	ErrBadStateLimit = errors.New("flight: MaxStates must be positive")
)

// Step is one entry of a reconstructed route: a cell position annotated
// with the remaining battery, the flying altitude, and the cumulative time
// at that point.
type Step struct {
	Row      int   `json:"row"`
	Col      int   `json:"col"`
	Battery  int64 `json:"battery"`
	Altitude int64 `json:"altitude"`
	Time     int64 `json:"time"`
}

// Result is the outcome of one search. For a reachable destination, Time
// holds the minimum arrival time and Path the origin-to-destination route;
// Path[0] is the origin state and the last element a destination-position
// state, with strictly increasing Time across entries.
// For an unreachable destination, Time is Unreachable and Path is nil.
type Result struct {
	Time int64  `json:"time"`
	Path []Step `json:"path"`
}

// Reachable reports whether the search found any route to the destination.
func (r Result) Reachable() bool { return r.Time != Unreachable }

// Options configures the behavior of the search engine.
//
// MaxTime   – optional cap on arrival times to explore; states whose time
//
//	would exceed it are skipped, and a destination only reachable
//	above the cap reports Unreachable. Must be ≥ 0.
//	Default is math.MaxInt64 (no cap).
//
// MaxStates – optional cap on distinct states recorded during the search,
//
//	a memory guard for embedders. Must be > 0.
//	Default is math.MaxInt (unlimited in practice).
type Options struct {
	MaxTime   int64 // Maximum arrival time to explore
	MaxStates int   // Maximum number of distinct states to record
}

// Option represents a functional option for configuring the search.
type Option func(*Options)

// WithMaxTime sets a maximum arrival-time threshold.
// States whose arrival time would exceed this value are not explored.
// Must pass a non-negative value; negative values cause ErrBadMaxTime.
// Default (if not set) is math.MaxInt64 (no cap).
func WithMaxTime(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			// Panic to signal invalid configuration early.
			panic(ErrBadMaxTime.Error())
		}
		o.MaxTime = max
	}
}

// WithMaxStates caps the number of distinct states the search may record
// before aborting with ErrStateLimit.
// Must pass a positive value; zero or negative cause ErrBadStateLimit.
// Default (if not set) is math.MaxInt (unlimited in practice).
func WithMaxStates(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			panic(ErrBadStateLimit.Error())
		}
		o.MaxStates = n
	}
}

// DefaultOptions returns an Options struct initialized with sensible
// defaults. Use this as a starting point for further functional-options
// overrides.
//
// Defaults:
//   - MaxTime:   math.MaxInt64 (no time limit; explore all reachable states).
//   - MaxStates: math.MaxInt   (no state limit).
func DefaultOptions() Options {
	return Options{
		MaxTime:   math.MaxInt64,
		MaxStates: math.MaxInt,
	}
}
