// Package parse turns the spec.md §6 input stream into the numeric
// problem data the solver builds a Dictionary from. It is an external
// collaborator to the simplex core (spec.md §1's "out of scope": numeric
// parsing of the input stream), grounded on the term/equation split of
// the barsbold-coding-simplex-go parser in the reference corpus.
package parse

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/quaegor/ratsimplex/internal/rational"
)

// ErrMalformedInput is the sentinel for every input-rejection case
// (spec.md §7's MALFORMED_INPUT).
var ErrMalformedInput = errors.New("parse: malformed input")

// Problem is the parser's output contract (spec.md §6): an objective
// with n coefficients and m constraint rows, each with n+1 entries
// (a_i1 .. a_in, b_i) meaning Σⱼ aᵢⱼ xⱼ <= bᵢ.
type Problem struct {
	Objective   []rational.Rational
	Constraints [][]rational.Rational
}

// N returns the number of decision variables.
func (p Problem) N() int { return len(p.Objective) }

// M returns the number of constraints.
func (p Problem) M() int { return len(p.Constraints) }

// Parse reads UTF-8 text per spec.md §6: blank lines ignored, the first
// non-blank line is the objective, every subsequent non-blank line is a
// constraint row with exactly n+1 decimal literals.
func Parse(r io.Reader) (Problem, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := scanner.Err(); err != nil {
		return Problem{}, errors.Wrap(err, "parse: reading input")
	}
	if len(lines) < 2 {
		return Problem{}, errors.Wrapf(ErrMalformedInput, "need an objective line and at least one constraint, got %d line(s)", len(lines))
	}

	objective, err := parseRow(lines[0])
	if err != nil {
		return Problem{}, errors.Wrapf(ErrMalformedInput, "line 1 (objective): %v", err)
	}
	n := len(objective)

	constraints := make([][]rational.Rational, 0, len(lines)-1)
	for i, line := range lines[1:] {
		row, err := parseRow(line)
		if err != nil {
			return Problem{}, errors.Wrapf(ErrMalformedInput, "line %d (constraint %d): %v", i+2, i+1, err)
		}
		if len(row) != n+1 {
			return Problem{}, errors.Wrapf(ErrMalformedInput, "line %d (constraint %d): expected %d entries, got %d", i+2, i+1, n+1, len(row))
		}
		constraints = append(constraints, row)
	}

	return Problem{Objective: objective, Constraints: constraints}, nil
}

func parseRow(line string) ([]rational.Rational, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("empty row")
	}
	row := make([]rational.Rational, len(fields))
	for i, f := range fields {
		v, err := rational.ParseDecimal(f)
		if err != nil {
			return nil, errors.Wrapf(err, "token %d (%q)", i+1, f)
		}
		row[i] = v
	}
	return row, nil
}
