package simplex

import "github.com/pkg/errors"

// Sentinel errors for the internal-bug conditions of spec.md §7. None
// of these should ever surface from a correct selector: SINGULAR_PIVOT
// and UNKNOWN_LEAVING are invariants the selector is responsible for
// upholding, and DIV_BY_ZERO (rational.ErrDivByZero) can only reach
// here through one of the other two.
var (
	ErrSingularPivot = errors.New("simplex: singular pivot")
	ErrUnknownLeaving = errors.New("simplex: unknown leaving variable")
)

// InternalError wraps an internal-bug error (one of the sentinels above,
// an exceeded MaxPivots cap, or a failed two-phase invariant) together
// with the Dictionary state at the moment of failure, for diagnostics. These
// are bugs, not LP outcomes — spec.md §7 is explicit that optimal,
// unbounded, and infeasible never flow through this type.
type InternalError struct {
	Err        error
	Dictionary *Dictionary
}

func (e *InternalError) Error() string {
	return e.Err.Error()
}

func (e *InternalError) Unwrap() error {
	return e.Err
}

func wrapInternal(err error, d *Dictionary) error {
	if err == nil {
		return nil
	}
	return &InternalError{Err: err, Dictionary: d}
}
