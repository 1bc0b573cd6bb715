// Package report formats a solved simplex.Outcome into the exact
// output lines spec.md §4.8 requires. Formatting is an external
// collaborator to the core (spec.md §1): nothing here touches pivoting.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/quaegor/ratsimplex/internal/simplex"
)

// Write emits the outcome's report lines to w, per spec.md §4.8:
//
//	optimal      -> "optimal" / value (7 sig figs) / witness point
//	unbounded    -> "unbounded"
//	infeasible   -> "infeasible"
func Write(w io.Writer, outcome simplex.Outcome) error {
	switch outcome.Kind {
	case simplex.Optimal:
		if _, err := fmt.Fprintln(w, "optimal"); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, outcome.Value.String()); err != nil {
			return err
		}
		coords := make([]string, len(outcome.Point))
		for i, v := range outcome.Point {
			coords[i] = v.String()
		}
		_, err := fmt.Fprintln(w, strings.Join(coords, " "))
		return err
	case simplex.Unbounded:
		_, err := fmt.Fprintln(w, "unbounded")
		return err
	case simplex.Infeasible:
		_, err := fmt.Fprintln(w, "infeasible")
		return err
	default:
		return fmt.Errorf("report: unknown outcome kind %v", outcome.Kind)
	}
}
