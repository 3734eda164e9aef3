// Package codec defines sentinel errors and limits for the solver's wire
// grammar: the whitespace-delimited input read once per invocation and the
// JSON (or sentinel) result written once.
package codec

import "errors"

// MaxGridDim caps each grid dimension accepted by Decode. Inputs beyond
// 1000×1000 are rejected before any grid memory is allocated.
const MaxGridDim = 1000

// Sentinel errors for malformed input. Decode fails fast on the first
// structural problem and never attempts partial computation; semantic
// violations (negative elevations, pads out of bounds, bad B/K) surface
// as the grid package's own sentinels.
var (
	// ErrBadHeader indicates the leading "N M B K" tokens are missing or
	// not integers.
	ErrBadHeader = errors.New("codec: header must be four integers N M B K")
	// ErrBadDimensions indicates N or M below 1.
	ErrBadDimensions = errors.New("codec: grid dimensions must be positive")
	// ErrGridTooLarge indicates N or M above MaxGridDim.
	ErrGridTooLarge = errors.New("codec: grid dimensions too large")
	// ErrBadElevation indicates a missing or non-integer elevation token.
	ErrBadElevation = errors.New("codec: elevation rows must be N rows of M integers")
	// ErrBadStationCount indicates a missing, non-integer, or negative S.
	ErrBadStationCount = errors.New("codec: recharge pad count must be a non-negative integer")
	// ErrBadStation indicates a missing or non-integer pad coordinate pair.
	ErrBadStation = errors.New("codec: recharge pads must be S pairs of integers")
	// ErrTrailingInput indicates tokens left over after the last pad.
	ErrTrailingInput = errors.New("codec: unexpected trailing input")
)
