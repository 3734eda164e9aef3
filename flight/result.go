package flight

import "github.com/hoverlab/aeropath/grid"

// traceback rebuilds the origin-to-destination route by walking the
// predecessor links backwards from the settled destination state until the
// origin state (the only state with no predecessor) is reached, then
// reversing the collected sequence in place.
//
// Each Step carries the state's position, battery, altitude, and the
// cumulative arrival time recorded for it. The walk is bounded: every
// predecessor is strictly earlier in time, so the relation is acyclic and
// terminates at the origin.
//
// Complexity: O(L), L = route length.
func (r *runner) traceback(terminal grid.State) []Step {
	var path []Step
	cur := terminal
	for {
		path = append(path, Step{
			Row:      cur.Row,
			Col:      cur.Col,
			Battery:  cur.Battery,
			Altitude: cur.Altitude,
			Time:     r.dist[cur],
		})
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		cur = p
	}
	// reverse path in-place
	for l, rr := 0, len(path)-1; l < rr; l, rr = l+1, rr-1 {
		path[l], path[rr] = path[rr], path[l]
	}

	return path
}
