// Package grid models the city a drone flies over: an immutable rectangular
// matrix of building elevations, a set of recharge pads, and the cost rule
// for a single move between adjacent cells.
//
// What:
//
//   - Grid wraps a rectangular [][]int64 elevation matrix together with the
//     battery capacity B and the per-visit recharge amount K.
//   - State is the unit of search identity: position plus remaining battery
//     plus current flying altitude. Altitude is the running maximum of the
//     elevations climbed so far and never decreases along a route.
//   - Move answers, for any State and axis-aligned direction, whether the
//     step is legal and what it costs. This is the only place the movement
//     semantics live; the search engine never computes cost itself.
//
// Why:
//
//   - Drone routing: minimum-time delivery across a skyline under battery limits.
//   - Any grid search where reachability depends on a depleting resource
//     and on the height profile of the route taken, not on position alone.
//
// Cost rule (per move):
//
//   - Every step costs 1 time and 1 battery unit.
//   - If the next building is taller than the current altitude, climbing
//     adds (elevation − altitude) to both time and battery, and the
//     altitude becomes that elevation.
//   - Lower or equal buildings are overflown at unchanged altitude for free;
//     descending terrain never refunds anything.
//   - A step that would leave the battery negative is illegal.
//   - Landing on a recharge pad restores K battery units, capped at B,
//     on every visit.
//
// Errors:
//
//   - ErrEmptyGrid: elevation matrix has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeElevation: an elevation is below zero.
//   - ErrBadCapacity: battery capacity B is not positive.
//   - ErrBadRecharge: recharge amount K is not positive.
//   - ErrStationOutOfBounds: a recharge pad lies outside the grid.
package grid
