package truth

import (
	"math/bits"
	"strings"
)

// PropertyHeader labels the columns of Properties.String.
const PropertyHeader = "0 1 S M L"

// Properties records membership in the five Post classes.
type Properties struct {
	ZeroPreserving bool
	OnePreserving  bool
	SelfDual       bool
	Monotonic      bool
	Linear         bool
}

// String renders the classes in PropertyHeader order, '+' for a member and a
// blank otherwise.
func (p Properties) String() string {
	flags := []bool{p.ZeroPreserving, p.OnePreserving, p.SelfDual, p.Monotonic, p.Linear}
	cols := make([]string, len(flags))
	for i, ok := range flags {
		cols[i] = " "
		if ok {
			cols[i] = "+"
		}
	}
	return strings.Join(cols, " ")
}

// Properties classifies the table against all five Post classes.
func (t Table) Properties() Properties {
	return Properties{
		ZeroPreserving: t.ZeroPreserving(),
		OnePreserving:  t.OnePreserving(),
		SelfDual:       t.SelfDual(),
		Monotonic:      t.Monotonic(),
		Linear:         t.Linear(),
	}
}

// ZeroPreserving reports f(0,...,0) = 0.
func (t Table) ZeroPreserving() bool {
	return t.outputs[0] == 0
}

// OnePreserving reports f(1,...,1) = 1.
func (t Table) OnePreserving() bool {
	return t.outputs[len(t.outputs)-1] == 1
}

// SelfDual reports f(x) = ¬f(¬x) for every row. Row len-1-i is the
// complement of row i.
func (t Table) SelfDual() bool {
	n := len(t.outputs)
	for i := 0; i < n/2; i++ {
		if t.outputs[i] == t.outputs[n-1-i] {
			return false
		}
	}
	return true
}

// Monotonic reports that raising any input never lowers the output. Checking
// each row against its single-bit successors covers every comparable pair.
func (t Table) Monotonic() bool {
	for i, v := range t.outputs {
		if v == 0 {
			continue
		}
		for j := 0; j < t.numVars; j++ {
			up := i | 1<<j
			if up != i && t.outputs[up] == 0 {
				return false
			}
		}
	}
	return true
}

// Linear reports that the Zhegalkin polynomial has no product of two or more
// variables.
func (t Table) Linear() bool {
	for m, c := range t.Zhegalkin() {
		if c == 1 && bits.OnesCount(uint(m)) > 1 {
			return false
		}
	}
	return true
}

// Zhegalkin returns the coefficients of the table's algebraic normal form.
// Coefficient m belongs to the product of the variables whose bits are set
// in m; coefficient 0 is the constant term.
func (t Table) Zhegalkin() []int {
	c := t.Outputs()
	for j := 0; j < t.numVars; j++ {
		bit := 1 << j
		for m := range c {
			if m&bit != 0 {
				c[m] ^= c[m^bit]
			}
		}
	}
	return c
}

// Complete reports whether a set of functions with the given properties is
// functionally complete: for each Post class some function lies outside it.
func Complete(ps []Properties) bool {
	var escapes [5]bool
	for _, p := range ps {
		for i, in := range []bool{p.ZeroPreserving, p.OnePreserving, p.SelfDual, p.Monotonic, p.Linear} {
			escapes[i] = escapes[i] || !in
		}
	}
	for _, ok := range escapes {
		if !ok {
			return false
		}
	}
	return true
}
