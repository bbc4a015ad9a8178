// Package cave generates cave-like grids for demos and benchmarks.
//
// What:
//
//   - Generate starts from solid rock and opens tiles at normally
//     distributed points around the centre, then smooths the result with a
//     cellular automaton: a tile becomes wall when more than six of its eight
//     neighbours are wall. The border is always wall.
//   - Largest picks the biggest connected floor region, typically used to
//     place a player or to draw search endpoints.
//
// Determinism:
//
//	The same Seed, size and Options always produce the same grid.
//
// Complexity:
//
//   - Generate: O(W·H·Passes).
//   - Largest:  O(W·H).
package cave
