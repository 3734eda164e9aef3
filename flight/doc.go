// Package flight provides the minimum-flight-time search engine for drone
// grid routing: a generalized Dijkstra over (row, col, battery, altitude)
// states with lazy decrease-key and deterministic tie-breaking.
//
// Overview:
//
//   - MinFlightTime computes the minimum time from the top-left to the
//     bottom-right cell of an elevation grid, honoring battery depletion,
//     climb surcharges, and recharge pads as defined by the grid package.
//   - The unit of exploration is the full (row, col, battery, altitude)
//     state: the same cell may be settled many times under different
//     battery/altitude combinations, each unlocking different futures.
//   - Distances and predecessors are stored sparsely in maps keyed by the
//     comparable state value; only discovered states cost memory.
//
// When to use:
//
//   - Whenever route feasibility depends on a depleting resource and on
//     the height profile of the route taken, not on position alone.
//   - As the computation core behind a solver process: feed it a decoded
//     grid, get back a scalar time plus a telemetry-annotated route.
//
// Key features:
//
//   - Functional options allow fine-tuning without changing the signature.
//   - WithMaxTime: abandons exploration beyond an arrival-time cap.
//   - WithMaxStates: aborts with ErrStateLimit past a state-count cap,
//     a memory guard for embedders that cannot cancel cooperatively.
//   - Deterministic tie-breaking: equal-time frontier entries order by
//     higher battery, then lower altitude, then row, then column.
//   - Unreachability is a successful outcome (Result.Time == Unreachable),
//     never an error.
//
// Performance and complexity:
//
//   - Time:  O(S log S), S = discovered states,
//     S ≤ N·M·(B+1)·(maxElevation+1) in theory and far fewer in practice.
//   - Space: O(S) for distance/predecessor maps and heap entries.
//
// Error handling (sentinel errors):
//
//   - ErrNilGrid:     a nil *grid.Grid was passed to MinFlightTime.
//   - ErrStateLimit:  the MaxStates cap was exceeded mid-search.
//   - ErrBadMaxTime / ErrBadStateLimit: panicked by the option
//     constructors on invalid arguments.
//
// API reference:
//
//	func MinFlightTime(g *grid.Grid, opts ...Option) (Result, error)
package flight
