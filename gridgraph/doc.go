// Package gridgraph treats a rectangular grid of byte cells as a graph of
// points, giving puzzle code bounds checks, neighbour offsets, directions
// and symbol lookup without re-deriving them each time.
//
// What:
//
//   - Grid wraps a rectangular [][]byte with fixed Width and Height.
//   - Point is an (X, Y) coordinate; X grows right, Y grows down.
//   - Direction is one of Up, Right, Down, Left in clockwise order, so
//     TurnRight is a single increment.
//   - Conn4 (default) or Conn8 via WithConn selects the neighbour
//     offsets used for adjacency and ray scans.
//
// Why:
//
//   - Word searches: read fixed-length rays in all eight directions.
//   - Agent simulations: step and turn on a bounded board.
//   - Symbol maps: group every cell by its byte (antenna frequencies).
//
// Complexity:
//
//   - NewGrid / FromLines: O(W×H) time and memory (deep copy).
//   - InBounds, At, Lookup, Index, Coordinate: O(1).
//   - Find, FindAll, Symbols: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package gridgraph
