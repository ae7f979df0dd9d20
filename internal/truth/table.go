// Package truth builds validated truth tables for the minimizer.
//
// A table of n variables holds 2^n outputs. Row i assigns bit j of i to
// variable j, so variable 0 (A) is the least significant input.
package truth

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/pborges/qmin/internal/expr"
)

// MaxVars bounds every table built by this package.
const MaxVars = 20

var (
	ErrLength      = errors.New("truth table length must be a power of two")
	ErrValue       = errors.New("truth table values must be 0 or 1")
	ErrTooManyVars = errors.Errorf("truth table supports at most %d variables", MaxVars)
)

// Table is an immutable truth table.
type Table struct {
	outputs []int
	numVars int
}

// New validates values and wraps a private copy of them.
func New(values []int) (Table, error) {
	n := 0
	for (1 << n) < len(values) {
		n++
	}
	if len(values) == 0 || len(values) != 1<<n {
		return Table{}, errors.Wrapf(ErrLength, "got %d values", len(values))
	}
	if n > MaxVars {
		return Table{}, errors.Wrapf(ErrTooManyVars, "got %d", n)
	}
	out := make([]int, len(values))
	for i, v := range values {
		if v != 0 && v != 1 {
			return Table{}, errors.Wrapf(ErrValue, "row %d is %d", i, v)
		}
		out[i] = v
	}
	return Table{outputs: out, numVars: n}, nil
}

// Parse reads a vector such as "0011 1100". Whitespace, ',' and '_' are
// separators and ignored.
func Parse(vector string) (Table, error) {
	values := make([]int, 0, len(vector))
	for i, r := range vector {
		switch {
		case r == '0' || r == '1':
			values = append(values, int(r-'0'))
		case r == ',' || r == '_' || strings.ContainsRune(" \t\r\n", r):
		default:
			return Table{}, errors.Wrapf(ErrValue, "offset %d: %q", i, r)
		}
	}
	return New(values)
}

// FromFunc tabulates f over all 2^numVars inputs. in[j] is bit j of the row
// index.
func FromFunc(numVars int, f func(in []bool) bool) (Table, error) {
	if numVars < 0 || numVars > MaxVars {
		return Table{}, errors.Wrapf(ErrTooManyVars, "got %d", numVars)
	}
	out := make([]int, 1<<numVars)
	in := make([]bool, numVars)
	for i := range out {
		for j := range in {
			in[j] = i>>j&1 == 1
		}
		if f(in) {
			out[i] = 1
		}
	}
	return Table{outputs: out, numVars: numVars}, nil
}

// FromExpr tabulates a parsed expression. vars orders the variables (vars[0]
// is bit 0); when empty the expression's own identifiers are used in sorted
// order.
func FromExpr(x expr.Expr, vars []string) (Table, error) {
	if len(vars) == 0 {
		vars = expr.Vars(x)
	}
	env := make(map[string]bool, len(vars))
	var evalErr error
	t, err := FromFunc(len(vars), func(in []bool) bool {
		for j, name := range vars {
			env[name] = in[j]
		}
		v, err := expr.Eval(x, env)
		if err != nil && evalErr == nil {
			evalErr = err
		}
		return v
	})
	if err != nil {
		return Table{}, err
	}
	if evalErr != nil {
		return Table{}, errors.Wrap(evalErr, "evaluate expression")
	}
	return t, nil
}

// Outputs returns a copy of the table's values.
func (t Table) Outputs() []int {
	out := make([]int, len(t.outputs))
	copy(out, t.outputs)
	return out
}

func (t Table) Len() int     { return len(t.outputs) }
func (t Table) NumVars() int { return t.numVars }

// At returns the output of row i.
func (t Table) At(i int) int { return t.outputs[i] }
