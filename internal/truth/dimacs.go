package truth

import (
	"io"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
	"github.com/pkg/errors"
	"github.com/rhartert/dimacs"
)

const satisfiable = 1

// cnfBuilder implements dimacs.Builder.
type cnfBuilder struct {
	nVars   int
	clauses [][]int
	seen    bool
}

func (b *cnfBuilder) Problem(problem string, nVars int, nClauses int) error {
	if problem != "cnf" {
		return errors.Errorf("instance of type %q is not supported", problem)
	}
	if nVars < 0 || nVars > MaxVars {
		return errors.Wrapf(ErrTooManyVars, "got %d", nVars)
	}
	b.nVars = nVars
	b.clauses = make([][]int, 0, nClauses)
	b.seen = true
	return nil
}

func (b *cnfBuilder) Clause(tmpClause []int) error {
	if !b.seen {
		return errors.New("clause before problem line")
	}
	clause := make([]int, len(tmpClause))
	for i, l := range tmpClause {
		if l == 0 || l > b.nVars || -l > b.nVars {
			return errors.Errorf("literal %d out of range 1..%d", l, b.nVars)
		}
		clause[i] = l
	}
	b.clauses = append(b.clauses, clause)
	return nil
}

func (b *cnfBuilder) Comment(_ string) error {
	return nil // ignore comments
}

// FromDIMACS reads a DIMACS CNF formula and tabulates it. DIMACS variable v
// is bit v-1. The satisfying assignments are enumerated with a SAT solver,
// blocking each model once found.
func FromDIMACS(r io.Reader) (Table, error) {
	b := &cnfBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return Table{}, errors.Wrap(err, "read dimacs")
	}
	if !b.seen {
		return Table{}, errors.New("read dimacs: missing problem line")
	}

	g := gini.New()
	for v := 1; v <= b.nVars; v++ {
		// v ∨ ¬v registers the variable even if no clause mentions it.
		g.Add(z.Dimacs2Lit(v))
		g.Add(z.Dimacs2Lit(-v))
		g.Add(z.LitNull)
	}
	for _, c := range b.clauses {
		for _, l := range c {
			g.Add(z.Dimacs2Lit(l))
		}
		g.Add(z.LitNull)
	}

	out := make([]int, 1<<b.nVars)
	for models := 0; models < len(out) && g.Solve() == satisfiable; models++ {
		row := 0
		for v := 1; v <= b.nVars; v++ {
			m := z.Dimacs2Lit(v)
			if g.Value(m) {
				row |= 1 << (v - 1)
				g.Add(m.Not())
			} else {
				g.Add(m)
			}
		}
		g.Add(z.LitNull)
		out[row] = 1
	}
	return Table{outputs: out, numVars: b.nVars}, nil
}
