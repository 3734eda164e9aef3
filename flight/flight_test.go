package flight_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/hoverlab/aeropath/flight"
	"github.com/hoverlab/aeropath/grid"
)

// mustGrid builds a model or fails the test immediately.
func mustGrid(t *testing.T, elev [][]int64, capacity, recharge int64, stations ...grid.Coord) *grid.Grid {
	t.Helper()
	g, err := grid.New(elev, capacity, recharge, stations)
	require.NoError(t, err)

	return g
}

// requireRouteInvariants checks the structural properties every reachable
// result must satisfy: the path starts at the origin, ends at the
// destination, times are strictly increasing with the last equal to the
// reported total, battery never dips below zero, and altitude never
// decreases.
func requireRouteInvariants(t *testing.T, g *grid.Grid, res flight.Result) {
	t.Helper()
	require.True(t, res.Reachable())
	require.NotEmpty(t, res.Path)

	first, last := res.Path[0], res.Path[len(res.Path)-1]
	require.Equal(t, 0, first.Row)
	require.Equal(t, 0, first.Col)
	require.Equal(t, int64(0), first.Time)
	require.Equal(t, g.Rows()-1, last.Row)
	require.Equal(t, g.Cols()-1, last.Col)
	require.Equal(t, res.Time, last.Time)

	for i, step := range res.Path {
		require.GreaterOrEqual(t, step.Battery, int64(0), "step %d battery", i)
		if i == 0 {
			continue
		}
		require.Greater(t, step.Time, res.Path[i-1].Time, "step %d time must strictly increase", i)
		require.GreaterOrEqual(t, step.Altitude, res.Path[i-1].Altitude, "step %d altitude must not decrease", i)
	}
}

// FlightSuite exercises the search engine under the canonical scenarios.
type FlightSuite struct {
	suite.Suite
}

// TestSingleCell verifies the degenerate 1×1 grid: origin equals
// destination, time 0, one-element path.
func (s *FlightSuite) TestSingleCell() {
	g := mustGrid(s.T(), [][]int64{{7}}, 3, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(0), res.Time)
	require.Len(s.T(), res.Path, 1)
	require.Equal(s.T(), flight.Step{Row: 0, Col: 0, Battery: 3, Altitude: 7, Time: 0}, res.Path[0])
}

// TestFlatSquare verifies a flat 2×2 grid: two unit moves, no climbs.
func (s *FlightSuite) TestFlatSquare() {
	g := mustGrid(s.T(), [][]int64{{0, 0}, {0, 0}}, 2, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Time)
	require.Len(s.T(), res.Path, 3)
	requireRouteInvariants(s.T(), g, res)
}

// TestSingleClimb verifies that a lone climbing move of height h costs
// exactly 1+h and leaves the drone at the destination's elevation.
func (s *FlightSuite) TestSingleClimb() {
	const h = 4
	g := mustGrid(s.T(), [][]int64{{0, h}}, 1+h, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(1+h), res.Time)
	require.Len(s.T(), res.Path, 2)
	last := res.Path[1]
	require.Equal(s.T(), int64(h), last.Altitude)
	require.Equal(s.T(), int64(0), last.Battery)
	requireRouteInvariants(s.T(), g, res)
}

// TestClimbSquare verifies a 2×2 grid whose far corner is h above the
// origin: both routes climb the same total, time = 2 + h.
func (s *FlightSuite) TestClimbSquare() {
	g := mustGrid(s.T(), [][]int64{{0, 3}, {1, 3}}, 9, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(5), res.Time) // 2 moves + 3 climb
	require.Equal(s.T(), int64(3), res.Path[len(res.Path)-1].Altitude)
	requireRouteInvariants(s.T(), g, res)
}

// TestFlyOverRidge verifies that after one climb the drone crosses lower
// terrain at unit cost and constant altitude.
func (s *FlightSuite) TestFlyOverRidge() {
	g := mustGrid(s.T(), [][]int64{{2, 9, 1, 0}}, 20, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(10), res.Time) // 8 (climb 2→9) + 1 + 1
	require.Len(s.T(), res.Path, 4)
	for _, step := range res.Path[1:] {
		require.Equal(s.T(), int64(9), step.Altitude)
	}
	requireRouteInvariants(s.T(), g, res)
}

// TestUnreachable verifies the sentinel outcome when every route needs more
// battery than B and no pad exists. Unreachability is not an error.
func (s *FlightSuite) TestUnreachable() {
	g := mustGrid(s.T(), [][]int64{{0, 5}}, 3, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), flight.Unreachable, res.Time)
	require.False(s.T(), res.Reachable())
	require.Nil(s.T(), res.Path)
}

// TestRechargeCorridor verifies scenario E: the destination is reachable
// only through the pad on the corridor, and removing that pad from the
// otherwise identical input flips the outcome to unreachable.
func (s *FlightSuite) TestRechargeCorridor() {
	elev := [][]int64{{0, 0, 0}}

	withPad := mustGrid(s.T(), elev, 1, 1, grid.Coord{Row: 0, Col: 1})
	res, err := flight.MinFlightTime(withPad)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Time)
	requireRouteInvariants(s.T(), withPad, res)

	withoutPad := mustGrid(s.T(), elev, 1, 1)
	res, err = flight.MinFlightTime(withoutPad)
	require.NoError(s.T(), err)
	require.Equal(s.T(), flight.Unreachable, res.Time)
}

// TestDetourThroughPad verifies a route that must leave the corridor to
// recharge and pass through the same cell twice: positions may repeat in a
// path as long as the full state differs.
func (s *FlightSuite) TestDetourThroughPad() {
	elev := [][]int64{
		{0, 0, 0, 0, 9},
		{20, 20, 0, 20, 9},
	}
	g := mustGrid(s.T(), elev, 13, 3, grid.Coord{Row: 1, Col: 2})
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(16), res.Time)
	require.Len(s.T(), res.Path, 8)
	requireRouteInvariants(s.T(), g, res)

	// The corridor cell above the pad is crossed on the way in and again on
	// the way out, with different battery each time.
	visits := 0
	for _, step := range res.Path {
		if step.Row == 0 && step.Col == 2 {
			visits++
		}
	}
	require.Equal(s.T(), 2, visits, "cell (0,2) should appear twice on the route")
}

// TestRechargeCapOnRoute verifies the pad never raises the battery beyond B
// even when K is larger than the deficit.
func (s *FlightSuite) TestRechargeCapOnRoute() {
	g := mustGrid(s.T(), [][]int64{{0, 0, 0}}, 5, 10, grid.Coord{Row: 0, Col: 1})
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Time)
	require.Equal(s.T(), int64(5), res.Path[1].Battery) // min(5, 4+10)
	requireRouteInvariants(s.T(), g, res)
}

// TestElevatedCruise verifies that equal-elevation terrain costs exactly 1
// per move even at nonzero heights.
func (s *FlightSuite) TestElevatedCruise() {
	g := mustGrid(s.T(), [][]int64{{3, 3}, {3, 3}}, 2, 1)
	res, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Time)
	for _, step := range res.Path {
		require.Equal(s.T(), int64(3), step.Altitude)
	}
}

// TestDeterministicTieBreak verifies that equal-time routes resolve by the
// documented ordering (battery desc, altitude asc, row, col) and reproduce
// identically across invocations.
func (s *FlightSuite) TestDeterministicTieBreak() {
	g := mustGrid(s.T(), [][]int64{{0, 0}, {0, 0}}, 2, 1)

	first, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	second, err := flight.MinFlightTime(g)
	require.NoError(s.T(), err)
	require.Equal(s.T(), first, second)

	// Both routes tie on every field except position; row 0 wins, so the
	// route goes east before south.
	require.Equal(s.T(), 0, first.Path[1].Row)
	require.Equal(s.T(), 1, first.Path[1].Col)
}

// TestMaxTime verifies the arrival-time cap: a destination only reachable
// above the cap reports Unreachable, while a sufficient cap leaves the
// result untouched.
func (s *FlightSuite) TestMaxTime() {
	g := mustGrid(s.T(), [][]int64{{0, 0}, {0, 0}}, 2, 1)

	res, err := flight.MinFlightTime(g, flight.WithMaxTime(1))
	require.NoError(s.T(), err)
	require.Equal(s.T(), flight.Unreachable, res.Time)

	res, err = flight.MinFlightTime(g, flight.WithMaxTime(2))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Time)
}

// TestMaxStates verifies the memory guard: a cap too small for the search
// aborts with ErrStateLimit, a generous one does not.
func (s *FlightSuite) TestMaxStates() {
	g := mustGrid(s.T(), [][]int64{{0, 0}, {0, 0}}, 2, 1)

	_, err := flight.MinFlightTime(g, flight.WithMaxStates(1))
	require.ErrorIs(s.T(), err, flight.ErrStateLimit)

	res, err := flight.MinFlightTime(g, flight.WithMaxStates(1024))
	require.NoError(s.T(), err)
	require.Equal(s.T(), int64(2), res.Time)
}

// TestNilGrid verifies the nil-grid sentinel.
func (s *FlightSuite) TestNilGrid() {
	_, err := flight.MinFlightTime(nil)
	require.ErrorIs(s.T(), err, flight.ErrNilGrid)
}

// TestOptionPanics verifies the option constructors reject invalid
// arguments by panicking, as documented.
func (s *FlightSuite) TestOptionPanics() {
	require.PanicsWithValue(s.T(), flight.ErrBadMaxTime.Error(), func() {
		flight.WithMaxTime(-1)(&flight.Options{})
	})
	require.PanicsWithValue(s.T(), flight.ErrBadStateLimit.Error(), func() {
		flight.WithMaxStates(0)(&flight.Options{})
	})
}

// Entry point for running the suite.
func TestFlightSuite(t *testing.T) {
	suite.Run(t, new(FlightSuite))
}
