package simplex

import "github.com/quaegor/ratsimplex/internal/rational"

// Status classifies the result of a selection attempt (spec.md §4.5).
type Status int

const (
	// StatusContinue means Entering/Leaving identify the next pivot.
	StatusContinue Status = iota
	// StatusOptimal means no positive objective coefficient remains.
	StatusOptimal
	// StatusUnbounded means the entering variable can increase without
	// bound.
	StatusUnbounded
)

// SelectPivot implements Bland's anti-cycling rule (spec.md §4.5):
//
//   - Entering: the first term in obj.Terms (already kept in §3 order)
//     with a strictly positive coefficient. None found => Optimal.
//   - Leaving: among rows whose coefficient on the entering variable is
//     negative, the one with the smallest |s/c| ratio; ties broken by
//     the smallest basic identity under the §3 order. No such row =>
//     Unbounded.
//
// Bland's rule guarantees no basis repeats and hence finite
// termination (P6), provided arithmetic is exact and this identity
// order is fixed across pivots — both hold here by construction.
func SelectPivot(d *Dictionary) (entering, leaving VarID, status Status) {
	found := false
	for _, t := range d.Obj.Terms {
		if t.Coeff.Sign() > 0 {
			entering = t.ID
			found = true
			break
		}
	}
	if !found {
		return VarID{}, VarID{}, StatusOptimal
	}

	haveLeaving := false
	var bestRatio rational.Rational

	for i := range d.Rows {
		idx := d.Rows[i].find(entering)
		if idx == -1 {
			continue
		}
		coeff := d.Rows[i].Terms[idx].Coeff
		if coeff.Sign() >= 0 {
			continue
		}
		ratio, _ := d.Rows[i].S.Quo(coeff) // coeff < 0, never zero
		ratio = ratio.Abs()

		switch {
		case !haveLeaving:
			bestRatio, leaving, haveLeaving = ratio, d.Rows[i].Basic, true
		case ratio.LessThan(bestRatio):
			bestRatio, leaving = ratio, d.Rows[i].Basic
		case ratio.Cmp(bestRatio) == 0 && d.Rows[i].Basic.Less(leaving):
			leaving = d.Rows[i].Basic
		}
	}

	if !haveLeaving {
		return entering, VarID{}, StatusUnbounded
	}
	return entering, leaving, StatusContinue
}
