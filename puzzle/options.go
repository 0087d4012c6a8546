package puzzle

import (
	"fmt"
	"runtime"

	"go.uber.org/zap"
)

// Options carries the settings shared by all solvers.
type Options struct {
	// Logger receives debug output from solvers. Never nil after Apply.
	Logger *zap.Logger
	// Workers bounds the goroutines a parallel solver may start.
	Workers int

	err error // first invalid option, reported by Apply
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns a no-op logger and one worker per CPU.
func DefaultOptions() Options {
	return Options{
		Logger:  zap.NewNop(),
		Workers: runtime.NumCPU(),
	}
}

// WithLogger sets the solver logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithWorkers bounds solver parallelism. Zero selects runtime.NumCPU();
// a negative value is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			if o.err == nil {
				o.err = fmt.Errorf("%w: workers must be >= 0, got %d", ErrOptionViolation, n)
			}
		case n == 0:
			o.Workers = runtime.NumCPU()
		default:
			o.Workers = n
		}
	}
}

// Apply folds opts over DefaultOptions and returns the first violation.
func Apply(opts ...Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Options{}, o.err
	}
	return o, nil
}
