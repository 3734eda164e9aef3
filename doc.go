// Package aeropath computes minimum flight times for an autonomous drone
// crossing a city grid of buildings under a depleting battery budget.
//
// 🚀 What is aeropath?
//
//	A small, deterministic library that brings together:
//		• Grid model: immutable building elevations, battery limits & recharge pads
//		• Move rule: unit cost per step, climb surcharge above current altitude
//		• Search: generalized Dijkstra over (row, col, battery, altitude)
//		• Path recovery: origin-to-destination route with per-step telemetry
//		• Wire codec: whitespace-delimited input, JSON result record
//
// ✨ Why choose aeropath?
//
//   - Exact – non-negative move costs, so the first settled goal state is optimal
//   - Deterministic – explicit tie-breaking; equal-time routes reproduce bit-identically
//   - Stateless – one search, one result; no shared state between invocations
//
// Under the hood, everything is organized under three subpackages and a binary:
//
//	grid/   — elevation grid, recharge pads & the single-move cost rule
//	flight/ — the state-space search engine and path reconstruction
//	codec/  — input grammar decoding & result encoding
//	cmd/aeropath — the solver binary: stdin in, one JSON record (or -1) out
//
// Quick ASCII example:
//
//	    3 0 2
//	    1 4 1
//	    0 0 0
//
//	a 3×3 grid of building heights; the drone starts above the 3 and must
//	reach the bottom-right corner before its battery runs out.
//
//	go get github.com/hoverlab/aeropath
package aeropath
