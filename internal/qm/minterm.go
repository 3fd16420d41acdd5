// Package qm implements the Quine-McCluskey core: minterm enumeration,
// prime-implicant combination, essential-prime cover selection, and
// Petrick's method.
package qm

import (
	"sort"

	"boolmin/internal/eval"
	"boolmin/token"
)

// Minterm is a single satisfying assignment, identified by its canonical
// decimal index (∑ bit_i · 2^i over the sorted variable order).
type Minterm struct {
	Index int
}

// GenerateMinterms evaluates rpn over every assignment of variables (in
// lexicographic bit-vector order) and returns the ascending-index list of
// satisfying minterms together with one singleton Implicant per minterm.
func GenerateMinterms(rpn []token.Token, variables []string) ([]Minterm, []Implicant) {
	n := len(variables)
	total := 1 << n

	var minterms []Minterm
	var implicants []Implicant

	for idx := 0; idx < total; idx++ {
		env := make(map[string]bool, n)
		for bit, name := range variables {
			env[name] = idx&(1<<bit) != 0
		}
		if eval.Evaluate(rpn, env) {
			minterms = append(minterms, Minterm{Index: idx})
			implicants = append(implicants, singleton(idx, n))
		}
	}

	sort.Slice(minterms, func(i, j int) bool { return minterms[i].Index < minterms[j].Index })
	return minterms, implicants
}
