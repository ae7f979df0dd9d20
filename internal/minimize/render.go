package minimize

import (
	"strings"

	"github.com/pborges/qmin/internal/truth"
)

const (
	Or       = " ∨ "
	Negation = "¬"

	// True is the rendering of a term that constrains no variable.
	True = "1"
	// False is the rendering of an empty expression.
	False = "0"
)

// Expression is an ordered list of conjunctions.
type Expression []string

// String joins the conjunctions with Or, or returns False when there are none.
func (e Expression) String() string {
	if len(e) == 0 {
		return False
	}
	return strings.Join(e, Or)
}

func render(imps []Implicant, numVars int, names []string) Expression {
	if len(names) != numVars {
		names = nil
	}
	expr := make(Expression, 0, len(imps))
	for _, imp := range imps {
		expr = append(expr, renderTerm(imp, numVars, names))
	}
	return expr
}

func renderTerm(imp Implicant, numVars int, names []string) string {
	var sb strings.Builder
	for i := 0; i < numVars; i++ {
		bit := uint64(1) << i
		if imp.Mask&bit == 0 {
			continue // don't-care
		}
		if imp.Value&bit == 0 {
			sb.WriteString(Negation)
		}
		if names != nil {
			sb.WriteString(names[i])
		} else {
			sb.WriteString(truth.DefaultName(i))
		}
	}
	if sb.Len() == 0 {
		return True
	}
	return sb.String()
}
