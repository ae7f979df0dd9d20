// Package minimize reduces a truth table to a disjunction of product terms
// with the Quine-McCluskey merge.
//
// The default SinglePass mode compares each popcount bucket of minterms with
// the next one once and keeps every term that merged. Its terms are printed
// at full width: a bit cleared by the merge prints as a negated variable, and
// terms with equal values print once. Exhaustive mode keeps merging until
// nothing changes, selects a cover of the minterms and prints only the
// variables each term constrains.
package minimize

import (
	"math/bits"
	"sort"

	"github.com/pborges/qmin/internal/truth"
)

// Mode selects how far the merge runs.
type Mode int

const (
	// SinglePass merges adjacent popcount buckets once and prints every
	// merged term at full width.
	SinglePass Mode = iota
	// Exhaustive merges to a fixpoint and prints an essential-first cover of
	// the prime implicants.
	Exhaustive
)

func (m Mode) String() string {
	switch m {
	case SinglePass:
		return "single"
	case Exhaustive:
		return "exhaustive"
	}
	return "unknown"
}

// Options configures a Minimizer.
type Options struct {
	Mode Mode

	// VarNames replaces the A, B, C... symbols when it has one entry per
	// variable.
	VarNames []string

	// Reduced prints only the variables a term constrains and keeps terms
	// that share a value but differ in mask. Exhaustive covers always print
	// this way.
	Reduced bool
}

// DefaultOptions is a single full-width pass with letter names.
var DefaultOptions = Options{Mode: SinglePass}

// Minimizer holds the minterms of one table. It is never mutated after New
// and may be shared between goroutines.
type Minimizer struct {
	opts     Options
	numVars  int
	minterms []uint64
	groups   [][]uint64
}

// New extracts the minterms of table. Every entry equal to 1 is a minterm;
// other values are ignored. table does not need a power-of-two length.
func New(table []int, opts Options) *Minimizer {
	m := &Minimizer{opts: opts}
	if len(table) > 0 {
		m.numVars = bits.Len(uint(len(table) - 1))
	}
	for i, v := range table {
		if v == 1 {
			m.minterms = append(m.minterms, uint64(i))
		}
	}
	m.groups = make([][]uint64, m.numVars+1)
	for _, t := range m.minterms {
		w := bits.OnesCount64(t)
		m.groups[w] = append(m.groups[w], t)
	}
	return m
}

// FromTable is New over a validated table.
func FromTable(t truth.Table, opts Options) *Minimizer {
	return New(t.Outputs(), opts)
}

func (m *Minimizer) NumVars() int { return m.numVars }

// Minterms returns the minterms in ascending order.
func (m *Minimizer) Minterms() []uint64 {
	return append([]uint64(nil), m.minterms...)
}

// Groups returns the minterms bucketed by popcount, buckets 0..NumVars.
func (m *Minimizer) Groups() [][]uint64 {
	out := make([][]uint64, len(m.groups))
	for i, g := range m.groups {
		out[i] = append([]uint64(nil), g...)
	}
	return out
}

// Implicants runs one merge pass: every minterm of weight k is compared with
// every minterm of weight k+1 and each pair differing in exactly one bit
// yields that pair with the bit dropped. The set is sorted by Value then Mask.
func (m *Minimizer) Implicants() []Implicant {
	full := fullMask(m.numVars)
	set := make(map[Implicant]bool)
	for k := 0; k+1 < len(m.groups); k++ {
		for _, a := range m.groups[k] {
			for _, b := range m.groups[k+1] {
				if c, ok := combine(mintermImplicant(a, full), mintermImplicant(b, full)); ok {
					set[c] = true
				}
			}
		}
	}
	return sortedImplicants(set)
}

// Cover returns the terms that make up the minimized expression. It is empty
// only when the table has no minterms.
func (m *Minimizer) Cover() []Implicant {
	if len(m.minterms) == 0 {
		return nil
	}
	if m.opts.Mode == Exhaustive {
		return m.exhaustiveCover()
	}
	if imps := m.Implicants(); len(imps) > 0 {
		return imps
	}
	// Nothing merged: fall back to the unreduced minterms.
	full := fullMask(m.numVars)
	imps := make([]Implicant, len(m.minterms))
	for i, t := range m.minterms {
		imps[i] = mintermImplicant(t, full)
	}
	return imps
}

// Terms returns the cover as it is printed. Unless the terms are reduced,
// every term carries the full mask and terms are unique by Value.
func (m *Minimizer) Terms() []Implicant {
	cover := m.Cover()
	if m.reduced() || len(cover) == 0 {
		return cover
	}
	return collapseValues(cover, fullMask(m.numVars))
}

// Expression renders Terms.
func (m *Minimizer) Expression() Expression {
	return render(m.Terms(), m.numVars, m.opts.VarNames)
}

func (m *Minimizer) reduced() bool {
	return m.opts.Reduced || m.opts.Mode == Exhaustive
}

// Minimize returns the minimized expression, "0" for a table without
// minterms.
func (m *Minimizer) Minimize() string {
	return m.Expression().String()
}

// collapseValues keeps one term per distinct Value, all with mask full.
func collapseValues(imps []Implicant, full uint64) []Implicant {
	set := make(map[Implicant]bool, len(imps))
	for _, imp := range imps {
		set[Implicant{Value: imp.Value, Mask: full}] = true
	}
	return sortedImplicants(set)
}

func sortedImplicants(set map[Implicant]bool) []Implicant {
	out := make([]Implicant, 0, len(set))
	for imp := range set {
		out = append(out, imp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].less(out[j]) })
	return out
}
