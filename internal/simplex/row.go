package simplex

import (
	"github.com/pkg/errors"

	"github.com/quaegor/ratsimplex/internal/rational"
)

// Row is the Constraint of spec.md §3: a distinguished basic identity
// plus an Equation giving its value in terms of the nonbasic variables,
// representing B = s + Σ cᵢ·vᵢ. The invariant that B never appears in
// its own nonbasic list (or is basic in more than one row) is
// maintained by Pivot, never by Row itself.
type Row struct {
	Basic VarID
	Equation
}

// NewRow builds a Row in canonical form.
func NewRow(basic VarID, s rational.Rational, terms ...Term) Row {
	return Row{Basic: basic, Equation: NewEquation(s, terms...)}
}

// Clone copies the row; the returned Row has its own Term slice (the
// immutable Rational values inside are shared, see Equation.Clone).
func (r Row) Clone() Row {
	return Row{Basic: r.Basic, Equation: r.Equation.Clone()}
}

// SolveFor implements spec.md §4.3: rearrange a row currently of the
// form `B = s + μ·v + Σ cⱼ·vⱼ` (μ != 0) into the equivalent
// `v = s' + Σ c'ⱼ·v'ⱼ + (1/μ)·B`, i.e.
//
//	s'   = -s/μ
//	c'ⱼ  = -cⱼ/μ     for every other nonbasic term
//	c'_B = 1/μ        (the old basic identity, now nonbasic)
//
// Returns ErrSingularPivot if v does not appear in the row — the
// selector must never request such a pivot (spec.md §4.5's invariant),
// so this only fires on an internal bug.
func (r *Row) SolveFor(entering VarID) error {
	idx := r.find(entering)
	if idx == -1 {
		return errors.Wrapf(ErrSingularPivot, "%s: entering variable %s not present", r.Basic, entering)
	}
	mu := r.Terms[idx].Coeff
	if mu.IsZero() {
		return errors.Wrapf(ErrSingularPivot, "%s: zero coefficient on %s", r.Basic, entering)
	}

	oldBasic := r.Basic
	r.deleteAt(idx)

	negMu := mu.Neg()
	newS, err := r.S.Quo(negMu)
	if err != nil {
		return errors.Wrap(err, "solveFor: dividing constant")
	}
	for i := range r.Terms {
		c, err := r.Terms[i].Coeff.Quo(negMu)
		if err != nil {
			return errors.Wrap(err, "solveFor: dividing coefficient")
		}
		r.Terms[i].Coeff = c
	}

	oldBasicCoeff, err := rational.FromInt(1).Quo(mu)
	if err != nil {
		return errors.Wrap(err, "solveFor: inverting pivot coefficient")
	}

	r.Basic = entering
	r.S = newS
	r.Terms = append(r.Terms, Term{ID: oldBasic, Coeff: oldBasicCoeff})
	r.sort()
	return nil
}
