// Package codec is the wire boundary of the solver: it decodes the
// whitespace-delimited problem grammar into an immutable grid.Grid and
// encodes a flight.Result back out as a single JSON record or the "-1"
// unreachable sentinel.
//
// What:
//
//   - Decode: one-pass read of "N M B K", N elevation rows, the pad count
//     S, and S 1-indexed pad coordinate pairs. Fails fast on the first
//     malformed token; rejects trailing input.
//   - Encode: one-shot write of the result — no interactive or partial
//     output, matching the subprocess contract the solver binary runs under.
//
// Why:
//
//   - The search core is a pure function; everything textual lives here,
//     so the engine and model stay free of I/O concerns.
//
// Limits:
//
//   - MaxGridDim caps each dimension at 1000 before any allocation.
//
// Errors:
//
//   - ErrBadHeader, ErrBadDimensions, ErrGridTooLarge, ErrBadElevation,
//     ErrBadStationCount, ErrBadStation, ErrTrailingInput for structural
//     problems; semantic problems surface as the grid package sentinels.
//
// The reachable-result record is additionally described by
// schemas/result.schema.json at the repository root.
package codec
