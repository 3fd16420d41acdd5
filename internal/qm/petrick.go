package qm

import (
	"fmt"

	"boolmin/token"
)

// petricksMethod handles the case where essential-prime elimination alone
// leaves minterms uncovered. It encodes the covering requirement as its
// own Boolean formula over one variable per residual prime and recurses
// into the same minterm/prime-implicant machinery to minimize that
// formula, then reads off the cheapest satisfying choice.
func (c *Chart) petricksMethod(numVars int) []Implicant {
	residual := c.residualMinterms()
	residualIdx := c.residualPrimeIndices()

	rpn := make([]token.Token, 0)
	for _, m := range residual {
		var covering []int
		for _, pi := range residualIdx {
			if containsInt(c.Primes[pi].Covered, m.Index) {
				covering = append(covering, pi)
			}
		}
		if len(covering) == 0 {
			panic("qm: residual minterm has no covering prime implicant")
		}
		for _, pi := range covering {
			rpn = append(rpn, token.Token{Kind: token.VAR, Name: primeVarName(pi)})
		}
		for k := 0; k < len(covering)-1; k++ {
			rpn = append(rpn, token.Token{Kind: token.OR})
		}
	}
	for k := 0; k < len(residual)-1; k++ {
		rpn = append(rpn, token.Token{Kind: token.AND})
	}

	variables := make([]string, len(residualIdx))
	for i, pi := range residualIdx {
		variables[i] = primeVarName(pi)
	}

	_, singletons := GenerateMinterms(rpn, variables)
	derivedPrimes := FindPrimeImplicants(singletons)
	if len(derivedPrimes) == 0 {
		panic("qm: petrick's covering formula is unsatisfiable")
	}

	shortest := -1
	for _, d := range derivedPrimes {
		if n := len(d.OnesPositions(len(variables))); shortest < 0 || n < shortest {
			shortest = n
		}
	}

	var best []int
	bestLiterals := -1
	for _, d := range derivedPrimes {
		ones := d.OnesPositions(len(variables))
		if len(ones) != shortest {
			continue
		}

		chosen := make([]int, len(ones))
		literals := 0
		for i, pos := range ones {
			origIdx := residualIdx[pos]
			chosen[i] = origIdx
			literals += c.Primes[origIdx].LiteralCount(numVars)
		}

		if bestLiterals < 0 || literals < bestLiterals {
			bestLiterals = literals
			best = chosen
		}
	}

	result := c.usedPrimeList()
	for _, idx := range best {
		result = append(result, c.Primes[idx])
	}
	return result
}

func primeVarName(i int) string {
	return fmt.Sprintf("p%d", i)
}
