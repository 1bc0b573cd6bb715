package simplex

import (
	"github.com/pkg/errors"

	"github.com/quaegor/ratsimplex/internal/rational"
)

// Dictionary is the whole system of spec.md §3: the objective equation
// together with m constraint rows, in the canonical solved-for form
// where every basic identity is defined by exactly one row and every
// nonbasic identity is valued at zero.
type Dictionary struct {
	Obj  Equation
	Rows []Row

	// OriginalObj holds the objective saved before two-phase
	// replacement; nil unless this Dictionary was built as an
	// auxiliary (spec.md §3).
	OriginalObj *Equation

	N int // number of decision variables
	M int // number of constraints
}

// OmegaIndex is n+1, the reserved index for the auxiliary variable
// (spec.md §3).
func (d *Dictionary) OmegaIndex() int { return d.N + 1 }

// Clone deep-copies the Dictionary: every Row, Equation and Term slice is
// cloned, never aliased (Rational values are copied and share their
// immutable *big.Rat), so pivoting on the copy leaves the receiver
// byte-identical (spec.md §5, R2).
func (d *Dictionary) Clone() *Dictionary {
	rows := make([]Row, len(d.Rows))
	for i, r := range d.Rows {
		rows[i] = r.Clone()
	}
	clone := &Dictionary{
		Obj:  d.Obj.Clone(),
		Rows: rows,
		N:    d.N,
		M:    d.M,
	}
	if d.OriginalObj != nil {
		orig := d.OriginalObj.Clone()
		clone.OriginalObj = &orig
	}
	return clone
}

// rowOf returns the row with the given basic identity, or -1.
func (d *Dictionary) rowOf(basic VarID) int {
	for i := range d.Rows {
		if d.Rows[i].Basic == basic {
			return i
		}
	}
	return -1
}

// Pivot implements spec.md §4.4: substitute entering's definition (via
// the leaving row's SolveFor) into every other row and the objective.
// The rearrangement (step 2) must finish before any substitution (steps
// 3-4) so that the leaving row is in canonical `entering = …` form
// first — between the two, the Dictionary transiently has `entering`
// both basic in that row and nonbasic elsewhere, which substitution
// repairs.
func (d *Dictionary) Pivot(entering, leaving VarID) error {
	idx := d.rowOf(leaving)
	if idx == -1 {
		return wrapInternal(errors.Wrapf(ErrUnknownLeaving, "leaving=%s", leaving), d)
	}

	pivotRow := &d.Rows[idx]
	if err := pivotRow.SolveFor(entering); err != nil {
		return wrapInternal(err, d)
	}

	snapshot := *pivotRow
	for i := range d.Rows {
		if i == idx {
			continue
		}
		d.Rows[i].Redefine(snapshot)
	}
	d.Obj.Redefine(snapshot)
	return nil
}

// IsFeasible reports whether every row's constant is >= 0 (spec.md
// §4.6).
func (d *Dictionary) IsFeasible() bool {
	for _, r := range d.Rows {
		if r.S.Sign() < 0 {
			return false
		}
	}
	return true
}

// IsOptimal reports whether no positive coefficient remains in the
// objective's nonbasic terms (spec.md §4.6).
func (d *Dictionary) IsOptimal() bool {
	for _, t := range d.Obj.Terms {
		if t.Coeff.Sign() > 0 {
			return false
		}
	}
	return true
}

// coordinate returns the value of decision variable x_i: the basic
// row's constant if x_i is basic, else 0 (spec.md §4.8).
func (d *Dictionary) coordinate(i int) rational.Rational {
	id := X(i)
	if idx := d.rowOf(id); idx != -1 {
		return d.Rows[idx].S
	}
	return rational.Zero()
}

// Point returns the witness point (x_1 .. x_n) at the current vertex.
func (d *Dictionary) Point() []rational.Rational {
	point := make([]rational.Rational, d.N)
	for i := 1; i <= d.N; i++ {
		point[i-1] = d.coordinate(i)
	}
	return point
}

// Value returns the objective value at the current vertex (spec.md
// I5: obj.S).
func (d *Dictionary) Value() rational.Rational {
	return d.Obj.S
}
