package simplex

import (
	"sort"

	"github.com/quaegor/ratsimplex/internal/rational"
)

// Term is a (identity, coefficient) pair living inside an Equation or
// Row. Coefficient is a nonzero rational in any well-formed row;
// zero-coefficient terms are dropped as soon as cancellation produces
// one (spec.md §3).
type Term struct {
	ID    VarID
	Coeff rational.Rational
}

// Equation is the objective form of spec.md §3: a constant plus a
// sequence of nonbasic terms, representing s + Σ cᵢ·vᵢ. Terms is kept
// sorted by VarID.Less as an invariant (I3) after every mutation, so
// the selector can scan it in order without a separate sort step.
type Equation struct {
	S     rational.Rational
	Terms []Term
}

// NewEquation builds an Equation from a constant and terms, sorting and
// deduplicating (by summation) as AddTerm would.
func NewEquation(s rational.Rational, terms ...Term) Equation {
	eq := Equation{S: s}
	for _, t := range terms {
		eq.AddTerm(t.ID, t.Coeff)
	}
	return eq
}

// Clone returns a copy with its own Term slice, so mutating the clone
// (via a pivot) cannot affect the original. The Rational values are
// copied, not re-allocated: they share their *big.Rat with the receiver,
// which is safe because no Rational operation mutates it. This is what
// makes the two-phase flow's "deep copy" (spec.md §9) trivial.
func (e Equation) Clone() Equation {
	terms := make([]Term, len(e.Terms))
	copy(terms, e.Terms)
	return Equation{S: e.S, Terms: terms}
}

// find returns the index of the term with the given identity, or -1.
func (e *Equation) find(id VarID) int {
	for i := range e.Terms {
		if e.Terms[i].ID == id {
			return i
		}
	}
	return -1
}

func (e *Equation) deleteAt(idx int) {
	e.Terms = append(e.Terms[:idx], e.Terms[idx+1:]...)
}

func (e *Equation) sort() {
	sort.Slice(e.Terms, func(i, j int) bool { return e.Terms[i].ID.Less(e.Terms[j].ID) })
}

// AddTerm adds coeff to the term for id (appending it if absent),
// dropping the term if the result is exactly zero. Exactness (no
// floating point) makes the "cancel to zero" test safe, per spec.md
// §4.2's edge case note.
func (e *Equation) AddTerm(id VarID, coeff rational.Rational) {
	if idx := e.find(id); idx != -1 {
		sum := e.Terms[idx].Coeff.Add(coeff)
		if sum.IsZero() {
			e.deleteAt(idx)
		} else {
			e.Terms[idx].Coeff = sum
		}
		return
	}
	if coeff.IsZero() {
		return
	}
	e.Terms = append(e.Terms, Term{ID: id, Coeff: coeff})
	e.sort()
}

// Redefine implements spec.md §4.2: substitute expr (a Row of the form
// B = s' + Σ c'ⱼ vⱼ) into the receiver wherever expr.Basic appears.
//
//  1. Find the term for expr.Basic in the receiver; call it μ. If
//     absent, this is a no-op — B does not appear here.
//  2. Remove that term.
//  3. self.S += μ·s'.
//  4. For every term (vⱼ, c'ⱼ) in expr, add μ·c'ⱼ to the receiver's
//     coefficient on vⱼ (AddTerm already merges-or-appends and drops
//     exact-zero results).
//
// μ = 0 completes correctly: every addition below is a no-op.
func (e *Equation) Redefine(expr Row) {
	idx := e.find(expr.Basic)
	if idx == -1 {
		return
	}
	mu := e.Terms[idx].Coeff
	e.deleteAt(idx)

	e.S = e.S.Add(mu.Mul(expr.S))
	for _, t := range expr.Terms {
		e.AddTerm(t.ID, mu.Mul(t.Coeff))
	}
}
