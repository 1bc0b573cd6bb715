package simplex

import (
	"github.com/pkg/errors"

	"github.com/quaegor/ratsimplex/internal/rational"
)

// OutcomeKind classifies the terminal state of Solve (spec.md §4.6/§4.8).
type OutcomeKind int

const (
	Optimal OutcomeKind = iota
	Unbounded
	Infeasible
)

func (k OutcomeKind) String() string {
	switch k {
	case Optimal:
		return "optimal"
	case Unbounded:
		return "unbounded"
	case Infeasible:
		return "infeasible"
	default:
		return "unknown"
	}
}

// Outcome is what Solve returns: a classification plus, for Optimal,
// the value and witness point spec.md §4.8 reports.
type Outcome struct {
	Kind  OutcomeKind
	Value rational.Rational
	Point []rational.Rational
}

// runMainLoop repeatedly selects and pivots until SelectPivot reports
// Optimal or Unbounded (spec.md §4.6's should_continue ≡ ¬optimal ∧
// ¬unbounded). Each iteration is strictly sequential: the rearrangement
// inside Pivot completes before any substitution happens, and no two
// pivots ever run concurrently.
func runMainLoop(d *Dictionary, opts Options, phaseLabel string) (Status, error) {
	pivots := 0
	for {
		entering, leaving, status := SelectPivot(d)
		if status != StatusContinue {
			opts.tracef("%s: %s after %d pivot(s)", phaseLabel, status.String(), pivots)
			return status, nil
		}

		if opts.MaxPivots > 0 && pivots >= opts.MaxPivots {
			return status, wrapInternal(errors.Errorf("%s: exceeded max pivots (%d)", phaseLabel, opts.MaxPivots), d)
		}

		opts.tracef("%s: pivot %d: entering=%s leaving=%s", phaseLabel, pivots+1, entering, leaving)
		if err := d.Pivot(entering, leaving); err != nil {
			return status, err
		}
		pivots++
	}
}

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusUnbounded:
		return "unbounded"
	default:
		return "continuing"
	}
}

// Solve implements the spec.md §4.6/§4.7 driver: if the initial
// dictionary is already feasible, run the main loop directly; else
// build, solve, and convert the auxiliary LP (two-phase simplex) before
// running the main loop on the recovered feasible dictionary.
func Solve(d *Dictionary, opts Options) (Outcome, error) {
	working := d
	if !d.IsFeasible() {
		opts.tracef("phase 1: building auxiliary")
		converted, outcome, err := twoPhase(d, opts)
		if err != nil {
			return Outcome{}, err
		}
		if outcome.Kind == Infeasible {
			return outcome, nil
		}
		working = converted
	}

	status, err := runMainLoop(working, opts, "phase 2")
	if err != nil {
		return Outcome{}, err
	}

	switch status {
	case StatusUnbounded:
		return Outcome{Kind: Unbounded}, nil
	case StatusOptimal:
		return Outcome{Kind: Optimal, Value: working.Value(), Point: working.Point()}, nil
	default:
		return Outcome{}, wrapInternal(errors.New("main loop returned without a terminal status"), working)
	}
}
