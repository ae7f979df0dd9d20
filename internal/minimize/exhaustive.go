package minimize

import "github.com/rhartert/yagh"

// Primes returns all prime implicants of the table, found by merging
// implicants of adjacent weight until a pass produces nothing new. Sorted by
// Value then Mask.
func (m *Minimizer) Primes() []Implicant {
	full := fullMask(m.numVars)

	current := make([]Implicant, len(m.minterms))
	for i, t := range m.minterms {
		current[i] = mintermImplicant(t, full)
	}

	primeSet := make(map[Implicant]bool)
	for len(current) > 0 {
		groups := make([][]Implicant, m.numVars+1)
		for _, imp := range current {
			w := imp.weight()
			groups[w] = append(groups[w], imp)
		}

		merged := make(map[Implicant]bool)
		used := make(map[Implicant]bool)
		for k := 0; k+1 < len(groups); k++ {
			for _, a := range groups[k] {
				for _, b := range groups[k+1] {
					if c, ok := combine(a, b); ok {
						merged[c] = true
						used[a] = true
						used[b] = true
					}
				}
			}
		}

		// Unmerged implicants are prime
		for _, imp := range current {
			if !used[imp] {
				primeSet[imp] = true
			}
		}
		current = sortedImplicants(merged)
	}
	return sortedImplicants(primeSet)
}

// exhaustiveCover selects primes covering every minterm: essential primes
// first, then the prime covering the most uncovered minterms until none are
// left. Ties go to the prime that sorts first.
func (m *Minimizer) exhaustiveCover() []Implicant {
	primes := m.Primes()
	if len(primes) == 0 {
		return nil
	}

	covers := make([][]int, len(primes))
	for pi, p := range primes {
		for mi, t := range m.minterms {
			if p.Covers(t) {
				covers[pi] = append(covers[pi], mi)
			}
		}
	}

	uncovered := make([]bool, len(m.minterms))
	for i := range uncovered {
		uncovered[i] = true
	}
	uncoveredCount := len(m.minterms)
	selected := make([]bool, len(primes))

	take := func(pi int) {
		selected[pi] = true
		for _, mi := range covers[pi] {
			if uncovered[mi] {
				uncovered[mi] = false
				uncoveredCount--
			}
		}
	}

	// Essential primes: the only prime covering some minterm.
	for changed := true; changed; {
		changed = false
		for mi, t := range m.minterms {
			if !uncovered[mi] {
				continue
			}
			sole := -1
			for pi, p := range primes {
				if selected[pi] || !p.Covers(t) {
					continue
				}
				if sole >= 0 {
					sole = -1
					break
				}
				sole = pi
			}
			if sole >= 0 {
				take(sole)
				changed = true
			}
		}
	}

	// Greedy: lower cost is better. cost = -gain + index/len keeps ties in
	// prime order. Entries go stale as minterms get covered; a popped entry
	// whose gain changed is pushed back with its current cost.
	gain := func(pi int) int {
		n := 0
		for _, mi := range covers[pi] {
			if uncovered[mi] {
				n++
			}
		}
		return n
	}
	cost := func(pi, g int) float64 {
		return float64(-g) + float64(pi)/float64(len(primes))
	}
	queued := make([]int, len(primes))
	heap := yagh.New[float64](len(primes))
	for pi := range primes {
		if selected[pi] {
			continue
		}
		if g := gain(pi); g > 0 {
			queued[pi] = g
			heap.Put(pi, cost(pi, g))
		}
	}
	for uncoveredCount > 0 {
		next, ok := heap.Pop()
		if !ok {
			break
		}
		pi := next.Elem
		g := gain(pi)
		if g == 0 {
			continue
		}
		if g != queued[pi] {
			queued[pi] = g
			heap.Put(pi, cost(pi, g))
			continue
		}
		take(pi)
	}

	var out []Implicant
	for pi, p := range primes {
		if selected[pi] {
			out = append(out, p)
		}
	}
	return out
}
