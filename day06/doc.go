// Package day06 solves "Guard Gallivant": simulating a patrolling guard on
// a lab floor map and finding where one extra obstruction would trap the
// guard in a loop.
//
// Movement rules, applied until the guard steps off the map:
//
//   - If the cell ahead is outside the map, the guard leaves.
//   - If the cell ahead is obstructed ('#'), the guard turns 90° right in
//     place.
//   - Otherwise the guard steps forward.
//
// Loop detection:
//
//	The guard is trapped once it occupies the same cell facing the same
//	direction twice. Each walk keeps a per-cell bitmask of the four
//	headings, so a walk costs O(W×H) time and memory.
//
// Part 2 candidates:
//
//	A new obstruction only changes the route if the unobstructed patrol
//	reaches it, so the cells of the part 1 path minus the start are
//	simulated one by one. They are checked in parallel by an errgroup
//	bounded by puzzle.Options Workers; the count does not depend on
//	scheduling. When the unobstructed patrol is itself a loop, every open
//	cell off that path also traps the guard and is counted without a walk.
//
// Errors:
//
//	ErrNoGuard        – no ^ > v < on the map.
//	ErrMultipleGuards – more than one guard glyph.
//	*InvalidCharError – any other character besides '.' and '#'.
//	ErrOutOfBounds    – LoopsWith called with a cell off the map.
package day06
