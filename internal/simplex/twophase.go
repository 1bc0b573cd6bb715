package simplex

import (
	"github.com/pkg/errors"

	"github.com/quaegor/ratsimplex/internal/rational"
)

// twoPhase implements spec.md §4.7. It never surfaces an infeasible
// original LP as a Go error — per spec.md §7, Infeasible is an outcome,
// not a bug. It returns a non-nil *Dictionary only alongside an
// Optimal-shaped intermediate result meaning "feasible, proceed to
// phase 2"; any other Outcome.Kind means the caller should stop.
func twoPhase(d *Dictionary, opts Options) (*Dictionary, Outcome, error) {
	aux := buildAuxiliary(d)

	leaving := mostInfeasibleRow(aux)
	omega := Omega(d.N)
	if err := aux.Pivot(omega, leaving); err != nil {
		return nil, Outcome{}, err
	}

	status, err := runMainLoop(aux, opts, "phase 1")
	if err != nil {
		return nil, Outcome{}, err
	}

	switch {
	case status == StatusUnbounded:
		// Impossible for the auxiliary LP (its objective -Ω is bounded
		// above by 0): treat as infeasible per spec.md §4.7 step 5.
		return nil, Outcome{Kind: Infeasible}, nil
	case !aux.Obj.S.IsZero():
		return nil, Outcome{Kind: Infeasible}, nil
	}

	converted, err := convert(aux)
	if err != nil {
		return nil, Outcome{}, err
	}
	return converted, Outcome{Kind: Optimal}, nil
}

// buildAuxiliary deep-copies d, saves its objective as OriginalObj,
// replaces the objective with -Ω, and appends +Ω to every row
// (spec.md §4.7 steps 1-2).
func buildAuxiliary(d *Dictionary) *Dictionary {
	aux := d.Clone()

	savedObj := d.Obj.Clone()
	aux.OriginalObj = &savedObj

	omega := Omega(d.N)
	aux.Obj = NewEquation(rational.Zero(), Term{ID: omega, Coeff: rational.FromInt(-1)})

	for i := range aux.Rows {
		aux.Rows[i].AddTerm(omega, rational.FromInt(1))
	}
	return aux
}

// mostInfeasibleRow returns the basic identity of the row with the
// smallest (most negative) constant, breaking ties by the §3 identity
// order for determinism. Driving Ω into this row via the forced pivot
// makes every row's constant >= 0 (spec.md §4.7 step 3).
func mostInfeasibleRow(d *Dictionary) VarID {
	best := d.Rows[0].Basic
	bestS := d.Rows[0].S
	for _, r := range d.Rows[1:] {
		switch {
		case r.S.LessThan(bestS):
			best, bestS = r.Basic, r.S
		case r.S.Cmp(bestS) == 0 && r.Basic.Less(best):
			best = r.Basic
		}
	}
	return best
}

// convert implements spec.md §4.7 step 6: deep-copy the solved
// auxiliary, strip every Ω term, and re-express the original objective
// over the current nonbasic set.
//
// If Ω is still basic at this point (a degenerate optimum with Ω = 0),
// the spec's open question commits to pivoting it out before stripping
// — done here by entering any nonbasic variable with a nonzero
// coefficient in Ω's row, which exists because a basic variable's row
// is never all-zero on the nonbasic side (it would make every other
// nonbasic assignment yield the same Ω = 0, which is only possible if
// the row is the trivial `Ω = 0`, i.e. m = 0 — excluded by spec.md's
// requirement of at least one constraint).
func convert(aux *Dictionary) (*Dictionary, error) {
	conv := aux.Clone()
	omega := Omega(conv.N)

	if idx := conv.rowOf(omega); idx != -1 {
		row := &conv.Rows[idx]
		if !row.S.IsZero() {
			return nil, wrapInternal(errors.New("convert: Ω basic with nonzero value after phase 1"), conv)
		}
		exit, ok := anyNonzeroNonbasic(*row)
		if !ok {
			return nil, wrapInternal(errors.New("convert: Ω's row has no nonbasic term to pivot on"), conv)
		}
		if err := conv.Pivot(exit, omega); err != nil {
			return nil, err
		}
	}

	for i := range conv.Rows {
		stripOmega(&conv.Rows[i].Equation, omega)
	}
	stripOmega(&conv.Obj, omega)

	original := *conv.OriginalObj
	conv.Obj = original.Clone()
	conv.OriginalObj = nil

	for _, t := range original.Terms {
		if idx := conv.rowOf(t.ID); idx != -1 {
			conv.Obj.Redefine(conv.Rows[idx])
		}
	}

	return conv, nil
}

// stripOmega removes any term referencing id from eq, if present.
func stripOmega(eq *Equation, id VarID) {
	if idx := eq.find(id); idx != -1 {
		eq.deleteAt(idx)
	}
}

// anyNonzeroNonbasic returns a nonbasic identity (other than Ω itself)
// with a nonzero coefficient in row, preferring the smallest under the
// §3 order for determinism.
func anyNonzeroNonbasic(row Row) (VarID, bool) {
	found := false
	var best VarID
	for _, t := range row.Terms {
		if t.Coeff.IsZero() {
			continue
		}
		if !found || t.ID.Less(best) {
			best, found = t.ID, true
		}
	}
	return best, found
}
