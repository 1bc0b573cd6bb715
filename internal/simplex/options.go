package simplex

import "log"

// Options carries the handful of runtime knobs the driver has. The
// zero value runs with no pivot cap and no tracing, matching spec.md
// §4.14/§6's "no configuration file" stance for the core.
type Options struct {
	// MaxPivots caps the number of pivots the main loop will perform
	// before giving up with an InternalError. Zero means unlimited. A
	// correct implementation never hits this (P6); it exists purely as
	// a defensive guard against a selector regression turning into an
	// infinite loop in production use.
	MaxPivots int

	// Trace, if non-nil, receives one line per phase transition and
	// one line per pivot. It is a side channel:
	// nothing written here affects Solve's return value.
	Trace *log.Logger
}

func (o Options) tracef(format string, args ...interface{}) {
	if o.Trace != nil {
		o.Trace.Printf(format, args...)
	}
}
