// Package flight implements the minimum-flight-time search over a drone
// grid: a generalized Dijkstra whose vertices are (row, col, battery,
// altitude) states rather than cells.
//
// A plain breadth-first search over positions alone is incorrect here,
// because the legality and cost of future moves depend on the remaining
// battery and on the altitude accumulated along the route, not on the
// position alone. The engine therefore explores the expanded state space,
// stored sparsely in maps keyed by the state value — altitude is unbounded
// in principle, so a dense array over the theoretical state space is not
// an option.
//
// Complexity:
//
//   - Time:  O(S log S), S ≤ N·M·(B+1)·(maxElevation+1) discovered states.
//   - Each state is settled at most once: up to S extractions from the heap.
//   - Each settled state offers at most four moves: up to 4·S pushes.
//   - Each heap operation costs O(log S).
//   - Space: O(S) for the distance and predecessor maps, O(S) worst-case
//     heap entries under “lazy decrease-key”.
//
// Notes on implementation choices:
//
//   - Move legality and cost live entirely in the grid package; the engine
//     only orders exploration and records improvements.
//   - Illegal moves (battery would go negative) are pruned at generation
//     and never enter the frontier; a state with no legal moves is a dead
//     end that simply yields no successors.
//   - We use a “lazy” decrease-key strategy: pushing duplicates into the
//     heap and discarding stale entries on pop.
//   - Because move costs are non-negative, the first non-stale pop of a
//     destination-position state is the global minimum arrival time; the
//     search stops there.
package flight

import (
	"container/heap"

	"github.com/hoverlab/aeropath/grid"
)

// directions are the four axis-aligned move offsets: E, W, S, N.
var directions = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}

// MinFlightTime computes the minimum time for a drone to fly from cell
// (0,0) to the bottom-right cell of g, starting with a full battery at the
// origin building's own altitude. It accepts functional options to
// customize behavior (WithMaxTime, WithMaxStates).
//
// Returns:
//
//   - Result with the minimum arrival time and the origin-to-destination
//     route, one Step per state on the route.
//   - Result{Time: Unreachable} (and err == nil) if no route exists within
//     the battery and option limits — unreachability is not an error.
//   - err: ErrNilGrid for a nil grid, ErrStateLimit if MaxStates was
//     exceeded.
//
// Each invocation is independent and stateless: all search-scoped
// structures are local to the call, and g is only read. Concurrent calls
// on the same Grid need no synchronization. Cancellation, if needed, must
// be imposed externally on the whole invocation; the frontier loop has no
// internal checkpoint.
//
// Complexity: O(S log S) time, O(S) memory, S = discovered states.
func MinFlightTime(g *grid.Grid, opts ...Option) (Result, error) {
	// 1) Build Options from defaults plus functional overrides.
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate the grid is non-nil. All deeper validation (shape,
	//    capacity, pad bounds) already happened in grid.New.
	if g == nil {
		return Result{}, ErrNilGrid
	}

	// 3) Prepare search-scoped structures. Sizing hints are modest on
	//    purpose: the discovered state count is usually far below the
	//    theoretical bound.
	r := &runner{
		g:       g,
		options: cfg,
		goal:    g.Goal(),
		dist:    make(map[grid.State]int64),
		prev:    make(map[grid.State]grid.State),
		pq:      make(statePQ, 0, g.Rows()*g.Cols()),
	}

	// 4) Seed the frontier with the origin state at time 0 and run the loop.
	r.init()
	best, found, err := r.process()
	if err != nil {
		return Result{}, err
	}

	// 5) Empty frontier without settling a destination state: unreachable.
	if !found {
		return Result{Time: Unreachable}, nil
	}

	// 6) Walk predecessor links back to the origin and reverse the route.
	return Result{Time: r.dist[best], Path: r.traceback(best)}, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *grid.Grid                // The input grid; read-only within the search.
	options Options                   // Configuration options (MaxTime, MaxStates).
	goal    grid.Coord                // Destination position: bottom-right cell.
	dist    map[grid.State]int64      // Maps state → minimum known arrival time.
	prev    map[grid.State]grid.State // Maps state → predecessor on its best route.
	pq      statePQ                   // Min-heap of *stateItem for the lazy frontier.
}

// init records the origin state at time 0 and pushes it onto the frontier.
// No climb is charged for the starting cell: the drone begins the flight
// already hovering at the origin building's elevation.
func (r *runner) init() {
	origin := r.g.Start()
	r.dist[origin] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &stateItem{state: origin, time: 0})
}

// process is the core frontier loop. It repeatedly extracts the
// smallest-time entry, discards it if stale, and otherwise either finishes
// (destination position reached) or expands the state's legal moves.
//
// Returns the first settled destination-position state and found=true, or
// found=false if the frontier drains (or MaxTime prunes the remainder)
// without ever settling one. ErrStateLimit propagates from expand.
func (r *runner) process() (grid.State, bool, error) {
	var item *stateItem
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-time entry from the heap.
		item = heap.Pop(&r.pq).(*stateItem)

		// 2) Skip stale entries: a strictly better time for this exact
		//    state was recorded after this entry was pushed.
		if best, ok := r.dist[item.state]; ok && best < item.time {
			continue
		}

		// 3) Beyond MaxTime nothing qualifies; the heap is time-ordered,
		//    so every remaining entry is at least as late. Stop exploring.
		if item.time > r.options.MaxTime {
			break
		}

		// 4) First non-stale destination pop is the optimum: with
		//    non-negative move costs every later pop has time ≥ this one.
		if item.state.Row == r.goal.Row && item.state.Col == r.goal.Col {
			return item.state, true, nil
		}

		// 5) Offer the four axis-aligned moves and relax improvements.
		if err := r.expand(item.state, item.time); err != nil {
			return grid.State{}, false, err
		}
	}

	return grid.State{}, false, nil
}

// expand consults the grid model for each of the four directions and, for
// every legal move that strictly improves the best known time of the
// resulting state, records the new time and predecessor link and pushes a
// fresh frontier entry (lazy decrease-key: stale entries are left behind
// and skipped on pop).
//
// Assumes r.dist[s] == t is final before the call.
func (r *runner) expand(s grid.State, t int64) error {
	var (
		next  grid.State
		cost  int64
		legal bool
	)
	for _, d := range directions {
		// Legality and cost are entirely the model's business: out-of-bounds
		// targets and battery-negative moves never come back as legal.
		next, cost, legal = r.g.Move(s, d[0], d[1])
		if !legal {
			continue
		}

		nt := t + cost

		// Skip states beyond the arrival-time cap.
		if nt > r.options.MaxTime {
			continue
		}

		// Relax only strict improvements; “<” keeps equal-time duplicates
		// out of the heap and makes the recorded route stable.
		known, seen := r.dist[next]
		if seen && nt >= known {
			continue
		}

		// A brand-new state counts against the MaxStates memory guard.
		if !seen && len(r.dist) >= r.options.MaxStates {
			return ErrStateLimit
		}

		r.dist[next] = nt
		r.prev[next] = s
		heap.Push(&r.pq, &stateItem{state: next, time: nt})
	}

	return nil
}

// stateItem represents a search state and its arrival time from the origin.
// It is stored in the priority queue to order exploration by time.
type stateItem struct {
	state grid.State // the (row, col, battery, altitude) tuple
	time  int64      // arrival time from the origin
}

// statePQ is a min-heap (priority queue) of *stateItem ordered by arrival
// time ascending. Under the “lazy-decrease-key” approach, improvements push
// new entries and outdated ones are discarded when popped.
//
// Ties on time break deterministically: higher remaining battery first,
// then lower altitude, then row, then column. Equal-time solutions thus
// reproduce identically across runs instead of depending on insertion order.
type statePQ []*stateItem

// Len returns the number of items in the heap.
func (pq statePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller time → higher priority, with the
// deterministic tie-break chain documented on statePQ.
func (pq statePQ) Less(i, j int) bool {
	a, b := pq[i], pq[j]
	if a.time != b.time {
		return a.time < b.time
	}
	if a.state.Battery != b.state.Battery {
		return a.state.Battery > b.state.Battery
	}
	if a.state.Altitude != b.state.Altitude {
		return a.state.Altitude < b.state.Altitude
	}
	if a.state.Row != b.state.Row {
		return a.state.Row < b.state.Row
	}

	return a.state.Col < b.state.Col
}

// Swap swaps two elements in the heap.
func (pq statePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type *stateItem.
func (pq *statePQ) Push(x interface{}) { *pq = append(*pq, x.(*stateItem)) }

// Pop removes and returns the last element from the heap's backing slice.
// Called by heap.Pop; returns interface{} that must be cast to *stateItem.
func (pq *statePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
