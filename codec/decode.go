// Package codec reads the solver's input grammar and writes its result
// grammar. The input, whitespace-delimited and consumed in order:
//
//	N M B K
//	<N rows, each M non-negative integers: building elevations>
//	S
//	<S rows, each: r c>   (1-indexed recharge pad coordinates)
//
// Decode performs a single pass and fails fast on the first malformed
// token; Encode produces a single write with no partial output.
package codec

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hoverlab/aeropath/grid"
)

// Decode reads one complete problem description from r and builds the
// immutable flight model. Pad coordinates are 1-indexed on the wire and
// converted to 0-indexed internally; duplicates collapse inside grid.New.
//
// Structural problems return the codec sentinels (ErrBadHeader,
// ErrBadDimensions, ErrGridTooLarge, ErrBadElevation, ErrBadStationCount,
// ErrBadStation, ErrTrailingInput), each wrapped with position context.
// Semantic problems return the grid sentinels (grid.ErrNegativeElevation,
// grid.ErrBadCapacity, grid.ErrBadRecharge, grid.ErrStationOutOfBounds).
//
// Complexity: O(N×M + S) time and memory.
func Decode(r io.Reader) (*grid.Grid, error) {
	br := bufio.NewReader(r)

	// 1) Header: N M B K.
	var (
		n, m int
		b, k int64
	)
	if _, err := fmt.Fscan(br, &n, &m, &b, &k); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadHeader, err)
	}
	if n < 1 || m < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrBadDimensions, n, m)
	}
	if n > MaxGridDim || m > MaxGridDim {
		return nil, fmt.Errorf("%w: got %d×%d, max %d×%d", ErrGridTooLarge, n, m, MaxGridDim, MaxGridDim)
	}

	// 2) Elevation rows: N rows of M integers.
	elev := make([][]int64, n)
	for i := 0; i < n; i++ {
		elev[i] = make([]int64, m)
		for j := 0; j < m; j++ {
			if _, err := fmt.Fscan(br, &elev[i][j]); err != nil {
				return nil, fmt.Errorf("%w: row %d, column %d: %v", ErrBadElevation, i+1, j+1, err)
			}
		}
	}

	// 3) Pad count S, then S pairs of 1-indexed coordinates.
	var s int
	if _, err := fmt.Fscan(br, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadStationCount, err)
	}
	if s < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadStationCount, s)
	}
	stations := make([]grid.Coord, 0, s)
	for i := 0; i < s; i++ {
		var row, col int
		if _, err := fmt.Fscan(br, &row, &col); err != nil {
			return nil, fmt.Errorf("%w: pad %d: %v", ErrBadStation, i+1, err)
		}
		stations = append(stations, grid.Coord{Row: row - 1, Col: col - 1})
	}

	// 4) The grammar allows nothing after the last pad.
	var extra string
	if _, err := fmt.Fscan(br, &extra); err == nil {
		return nil, fmt.Errorf("%w: %q", ErrTrailingInput, extra)
	}

	return grid.New(elev, b, k, stations)
}
