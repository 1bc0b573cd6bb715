package simplex_test

import (
	"strings"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/require"

	"github.com/quaegor/ratsimplex/internal/parse"
	"github.com/quaegor/ratsimplex/internal/rational"
	"github.com/quaegor/ratsimplex/internal/simplex"
)

func solve(t *testing.T, input string) simplex.Outcome {
	t.Helper()
	p, err := parse.Parse(strings.NewReader(input))
	require.NoError(t, err)

	d := simplex.Build(p)
	outcome, err := simplex.Solve(d, simplex.Options{MaxPivots: 10_000})
	if err != nil {
		t.Fatalf("solve failed: %v\ndictionary at failure:\n%s", err, spew.Sdump(d))
	}
	return outcome
}

func requirePoint(t *testing.T, outcome simplex.Outcome, want ...string) {
	t.Helper()
	require.Equal(t, simplex.Optimal, outcome.Kind)
	require.Len(t, outcome.Point, len(want))
	for i, w := range want {
		require.Equal(t, w, outcome.Point[i].String(), "coordinate %d", i+1)
	}
}

// E1: Vanderbei 2.1 — already feasible, optimal.
func TestVanderbei21(t *testing.T) {
	outcome := solve(t, `
		5 4 3
		2 3 1 5
		4 1 2 11
		3 4 2 8
	`)
	require.Equal(t, simplex.Optimal, outcome.Kind)
	require.Equal(t, "13", outcome.Value.String())
	requirePoint(t, outcome, "2", "0", "1")
}

// E2: unbounded.
func TestUnbounded(t *testing.T) {
	outcome := solve(t, `
		1 1
		-1 1 1
		-1 0 2
	`)
	require.Equal(t, simplex.Unbounded, outcome.Kind)
}

// E3: Vanderbei 2.6 — initially infeasible, feasible after auxiliary.
func TestVanderbei26TwoPhase(t *testing.T) {
	outcome := solve(t, `
		1 -1 1
		2 -1 2 4
		2 -3 1 -5
		-1 1 -2 -1
	`)
	require.Equal(t, simplex.Optimal, outcome.Kind)
	require.Equal(t, "0.6", outcome.Value.String())
	requirePoint(t, outcome, "0", "2.8", "3.4")
}

// E4: truly infeasible.
func TestTrulyInfeasible(t *testing.T) {
	outcome := solve(t, `
		1 1
		1 1 -1
		-1 -1 -1
	`)
	require.Equal(t, simplex.Infeasible, outcome.Kind)
}

// E5: Beale's example — degenerate, cycles under the largest-coefficient
// rule; Bland's rule must still terminate, and the witness point it
// terminates at must actually be feasible and match the reported value
// (checked generically against the parsed problem rather than against a
// hand-computed optimum, since the point of this test is termination,
// not reproducing a literature value).
func TestBealesCycleExample(t *testing.T) {
	input := `
		0.75 -150 0.02 -6
		0.25 -60 -0.04 9 0
		0.5 -90 -0.02 3 0
		0 0 1 0 1
	`
	p, err := parse.Parse(strings.NewReader(input))
	require.NoError(t, err)

	outcome := solve(t, input)
	require.Equal(t, simplex.Optimal, outcome.Kind)
	requireFeasibleAndConsistent(t, p, outcome)
}

// requireFeasibleAndConsistent checks an Optimal outcome's witness point
// against the original problem data directly: every constraint holds
// and the reported value equals c·x.
func requireFeasibleAndConsistent(t *testing.T, p parse.Problem, outcome simplex.Outcome) {
	t.Helper()
	require.Equal(t, simplex.Optimal, outcome.Kind)
	require.Len(t, outcome.Point, p.N())

	value := rational.Zero()
	for j, c := range p.Objective {
		value = value.Add(c.Mul(outcome.Point[j]))
	}
	require.Equal(t, outcome.Value.String(), value.String())

	for i, row := range p.Constraints {
		lhs := rational.Zero()
		for j := 0; j < p.N(); j++ {
			lhs = lhs.Add(row[j].Mul(outcome.Point[j]))
		}
		b := row[p.N()]
		require.False(t, lhs.GreaterThan(b), "constraint %d violated: %s > %s", i+1, lhs.String(), b.String())
	}
	for j, x := range outcome.Point {
		require.False(t, x.Sign() < 0, "x_%d negative", j+1)
	}
}

// E6: n=1 trivial.
func TestTrivialSingleVariable(t *testing.T) {
	outcome := solve(t, "1\n1 1")
	require.Equal(t, simplex.Optimal, outcome.Kind)
	require.Equal(t, "1", outcome.Value.String())
	requirePoint(t, outcome, "1")
}

// R2: deep-copying a Dictionary and pivoting on the copy leaves the
// original byte-identical (spec.md §5, §8 R2).
func TestCloneIsolatesMutation(t *testing.T) {
	p, err := parse.Parse(strings.NewReader(`
		5 4 3
		2 3 1 5
		4 1 2 11
		3 4 2 8
	`))
	require.NoError(t, err)

	original := simplex.Build(p)
	before := spew.Sdump(original)

	clone := original.Clone()
	entering, leaving, status := simplex.SelectPivot(clone)
	require.Equal(t, simplex.StatusContinue, status)
	require.NoError(t, clone.Pivot(entering, leaving))

	require.Equal(t, before, spew.Sdump(original))
	require.NotEqual(t, spew.Sdump(clone), spew.Sdump(original))
}

// R1: solving for v and then back for the original basic recovers an
// algebraically identical row.
func TestSolveForRoundTrip(t *testing.T) {
	row := simplex.NewRow(simplex.W(1), rational.FromInt(10),
		simplex.Term{ID: simplex.X(1), Coeff: rational.FromInt(2)},
		simplex.Term{ID: simplex.X(2), Coeff: rational.FromInt(3)},
	)
	original := row.Clone()

	require.NoError(t, row.SolveFor(simplex.X(1)))
	require.NoError(t, row.SolveFor(simplex.W(1)))

	require.Equal(t, original.Basic, row.Basic)
	require.Equal(t, original.S.String(), row.S.String())
	require.Len(t, row.Terms, len(original.Terms))
	for i := range original.Terms {
		require.Equal(t, original.Terms[i].ID, row.Terms[i].ID)
		require.Equal(t, original.Terms[i].Coeff.String(), row.Terms[i].Coeff.String())
	}
}

// §4.6: IsFeasible/IsOptimal classify the initial dictionary, and
// SelectPivot reports Unbounded when no row has a negative coefficient
// on the entering variable.
func TestClassificationPredicates(t *testing.T) {
	p, err := parse.Parse(strings.NewReader(`
		1 1
		-1 1 1
		-1 0 2
	`))
	require.NoError(t, err)

	d := simplex.Build(p)
	require.True(t, d.IsFeasible())
	require.False(t, d.IsOptimal())

	entering, leaving, status := simplex.SelectPivot(d)
	require.Equal(t, simplex.StatusUnbounded, status)
	require.Equal(t, simplex.X(1), entering)
	require.Equal(t, simplex.VarID{}, leaving)
}

// P1/P5: after every pivot on a feasible dictionary, every row's
// constant stays >= 0 and nonbasic terms stay in §3 order.
func TestPivotInvariants(t *testing.T) {
	p, err := parse.Parse(strings.NewReader(`
		5 4 3
		2 3 1 5
		4 1 2 11
		3 4 2 8
	`))
	require.NoError(t, err)

	d := simplex.Build(p)
	require.True(t, d.IsFeasible())

	for {
		entering, leaving, status := simplex.SelectPivot(d)
		if status != simplex.StatusContinue {
			break
		}
		require.NoError(t, d.Pivot(entering, leaving))

		for _, r := range d.Rows {
			require.True(t, r.S.Sign() >= 0, "row %s went negative", r.Basic)
			for i := 1; i < len(r.Terms); i++ {
				require.True(t, r.Terms[i-1].ID.Less(r.Terms[i].ID), "nonbasic terms out of order in row %s", r.Basic)
			}
		}
	}
}
