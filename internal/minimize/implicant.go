package minimize

import "math/bits"

// Implicant represents a product term using bitmasks.
// Value holds the bit values for care positions; Mask has 1=care, 0=don't-care.
type Implicant struct {
	Value uint64
	Mask  uint64
}

// Covers reports whether minterm t satisfies the term.
func (imp Implicant) Covers(t uint64) bool {
	return t&imp.Mask == imp.Value
}

// Literals is the number of variables the term constrains.
func (imp Implicant) Literals() int {
	return bits.OnesCount64(imp.Mask)
}

// Literals sums the literals of every term in cover.
func Literals(cover []Implicant) int {
	n := 0
	for _, imp := range cover {
		n += imp.Literals()
	}
	return n
}

// weight is the popcount of the cared-for bits.
func (imp Implicant) weight() int {
	return bits.OnesCount64(imp.Value & imp.Mask)
}

func (imp Implicant) less(o Implicant) bool {
	if imp.Value != o.Value {
		return imp.Value < o.Value
	}
	return imp.Mask < o.Mask
}

func mintermImplicant(t, full uint64) Implicant {
	return Implicant{Value: t & full, Mask: full}
}

func fullMask(numVars int) uint64 {
	if numVars >= 64 {
		return ^uint64(0)
	}
	return uint64(1)<<numVars - 1
}

// combine merges two implicants that have the same mask and differ in
// exactly one cared-for bit. The result does not depend on argument order.
func combine(a, b Implicant) (Implicant, bool) {
	if a.Mask != b.Mask {
		return Implicant{}, false
	}
	diff := (a.Value ^ b.Value) & a.Mask
	if diff == 0 || diff&(diff-1) != 0 {
		return Implicant{}, false // 0 or >1 bits differ
	}
	return Implicant{
		Value: a.Value &^ diff,
		Mask:  a.Mask &^ diff,
	}, true
}
