package report_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/quaegor/ratsimplex/internal/rational"
	"github.com/quaegor/ratsimplex/internal/report"
	"github.com/quaegor/ratsimplex/internal/simplex"
)

func TestWriteOptimal(t *testing.T) {
	var buf bytes.Buffer
	outcome := simplex.Outcome{
		Kind:  simplex.Optimal,
		Value: rational.FromInt(13),
		Point: []rational.Rational{rational.FromInt(2), rational.Zero(), rational.FromInt(1)},
	}
	require.NoError(t, report.Write(&buf, outcome))
	require.Equal(t, "optimal\n13\n2 0 1\n", buf.String())
}

func TestWriteOptimalTruncatesDecimals(t *testing.T) {
	var buf bytes.Buffer
	third := rational.FromFrac(1, 3)
	outcome := simplex.Outcome{
		Kind:  simplex.Optimal,
		Value: third,
		Point: []rational.Rational{third},
	}
	require.NoError(t, report.Write(&buf, outcome))
	require.Equal(t, "optimal\n0.3333333\n0.3333333\n", buf.String())
}

func TestWriteUnbounded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, simplex.Outcome{Kind: simplex.Unbounded}))
	require.Equal(t, "unbounded\n", buf.String())
}

func TestWriteInfeasible(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.Write(&buf, simplex.Outcome{Kind: simplex.Infeasible}))
	require.Equal(t, "infeasible\n", buf.String())
}
