// Package puzzle defines the contract every day's solver satisfies and the
// registry the command line dispatches through.
//
// What:
//
//   - Answer: the two integer results of one day.
//   - SolveFunc: reads one puzzle input and returns its Answer.
//   - Puzzle: a day number, a title and its SolveFunc.
//   - Registry: day → Puzzle lookup, listed in day order.
//   - Run: opens the input file, solves it and logs timing.
//
// Options:
//
//	WithLogger(l)  – *zap.Logger for debug output; defaults to zap.NewNop().
//	WithWorkers(n) – goroutine limit for parallel solvers; 0 means NumCPU.
//
// Errors:
//
//	ErrOptionViolation  – an option received an invalid value.
//	ErrDayNotRegistered – Lookup for a day nobody registered.
//	ErrDuplicateDay     – Register called twice for the same day.
//	ErrInvalidPuzzle    – day outside 1..25 or nil SolveFunc.
package puzzle
