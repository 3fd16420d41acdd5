package qm

// Chart is the prime-implicant chart: a bipartite relation between
// minterms and primes, tracking which of each have already been
// accounted for by the essential-prime elimination loop.
type Chart struct {
	Minterms []Minterm
	Primes   []Implicant

	usedMinterms map[int]bool
	usedPrimes   map[key]bool
}

// NewChart builds a Chart over the given minterm and prime-implicant sets.
func NewChart(minterms []Minterm, primes []Implicant) *Chart {
	return &Chart{
		Minterms:     minterms,
		Primes:       primes,
		usedMinterms: make(map[int]bool),
		usedPrimes:   make(map[key]bool),
	}
}

// SelectCover runs essential-prime elimination to a fixed point, then
// falls back to Petrick's method (via petrick.go) if minterms remain
// uncovered. numVars is the variable count of the *original* problem,
// needed for Petrick's literal-count tiebreak.
func (c *Chart) SelectCover(numVars int) []Implicant {
	for c.eliminateEssentialPrimes() {
	}

	if len(c.usedMinterms) == len(c.Minterms) {
		return c.usedPrimeList()
	}

	return c.petricksMethod(numVars)
}

// eliminateEssentialPrimes performs one full pass over the minterms not
// yet covered, marking as essential (and immediately accounting for) any
// prime that is the sole remaining cover of some minterm. Updates made
// mid-pass are visible to the rest of the same pass. Returns whether
// anything changed.
func (c *Chart) eliminateEssentialPrimes() bool {
	anyEliminated := false

	for _, m := range c.Minterms {
		if c.usedMinterms[m.Index] {
			continue
		}

		sole := -1
		for i, p := range c.Primes {
			if c.usedPrimes[p.key()] || !containsInt(p.Covered, m.Index) {
				continue
			}
			if sole >= 0 {
				sole = -1
				break
			}
			sole = i
		}

		if sole >= 0 {
			c.markUsed(sole)
			anyEliminated = true
		}
	}

	return anyEliminated
}

func (c *Chart) markUsed(primeIdx int) {
	p := c.Primes[primeIdx]
	c.usedPrimes[p.key()] = true
	for _, m := range p.Covered {
		c.usedMinterms[m] = true
	}
}

func (c *Chart) usedPrimeList() []Implicant {
	var out []Implicant
	for _, p := range c.Primes {
		if c.usedPrimes[p.key()] {
			out = append(out, p)
		}
	}
	return out
}

// residualMinterms returns the minterms not yet in usedMinterms, in
// ascending order.
func (c *Chart) residualMinterms() []Minterm {
	var out []Minterm
	for _, m := range c.Minterms {
		if !c.usedMinterms[m.Index] {
			out = append(out, m)
		}
	}
	return out
}

// residualPrimeIndices returns the indices into c.Primes of primes not yet
// used, in ascending order.
func (c *Chart) residualPrimeIndices() []int {
	var out []int
	for i, p := range c.Primes {
		if !c.usedPrimes[p.key()] {
			out = append(out, i)
		}
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}
