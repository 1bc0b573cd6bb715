package simplex

import (
	"github.com/quaegor/ratsimplex/internal/parse"
	"github.com/quaegor/ratsimplex/internal/rational"
)

// Build implements spec.md §4.10: construct the initial dictionary from
// a parsed Problem. One slack variable w_i per constraint row carries
// the LHS (w_i = b_i - Σ aᵢⱼxⱼ); decision variables x_1..x_n start
// nonbasic in the objective with their input coefficients. The result
// may not be primal-feasible (some b_i < 0); Solve handles that via
// two-phase initialization.
func Build(p parse.Problem) *Dictionary {
	n, m := p.N(), p.M()

	rows := make([]Row, m)
	for i, coeffs := range p.Constraints {
		terms := make([]Term, 0, n)
		for j := 0; j < n; j++ {
			a := coeffs[j]
			if a.IsZero() {
				continue
			}
			terms = append(terms, Term{ID: X(j + 1), Coeff: a.Neg()})
		}
		b := coeffs[n]
		rows[i] = NewRow(W(i+1), b, terms...)
	}

	objTerms := make([]Term, 0, n)
	for j := 0; j < n; j++ {
		c := p.Objective[j]
		if c.IsZero() {
			continue
		}
		objTerms = append(objTerms, Term{ID: X(j + 1), Coeff: c})
	}

	return &Dictionary{
		Obj:  NewEquation(rational.Zero(), objTerms...),
		Rows: rows,
		N:    n,
		M:    m,
	}
}
