package qm

import "sort"

// FindPrimeImplicants runs the combine/dedup fixed-point loop over a set
// of singleton implicants and returns all prime implicants: the set that
// cannot be combined with any other member.
func FindPrimeImplicants(implicants []Implicant) []Implicant {
	current := implicants

	for {
		next, anyMerged := combinePhase(current)
		current = dedupe(next)
		if !anyMerged {
			break
		}
	}

	sort.Slice(current, func(i, j int) bool {
		return current[i].Covered[0] < current[j].Covered[0]
	})
	return current
}

// combinePhase attempts every unordered pair of the current implicant set.
// A pair that combines marks both inputs consumed and appends the merged
// result; unconsumed inputs carry forward unchanged.
func combinePhase(implicants []Implicant) (result []Implicant, anyMerged bool) {
	used := make([]bool, len(implicants))

	for i := 0; i < len(implicants); i++ {
		for j := i + 1; j < len(implicants); j++ {
			merged, ok := combineWith(implicants[i], implicants[j])
			if !ok {
				continue
			}
			used[i] = true
			used[j] = true
			result = append(result, merged)
			anyMerged = true
		}
	}

	for i, imp := range implicants {
		if !used[i] {
			result = append(result, imp)
		}
	}

	return result, anyMerged
}

// dedupe removes duplicate implicants by bits (keyed-set semantics),
// asserting — not unioning — that colliding implicants carry identical
// Covered sets.
func dedupe(implicants []Implicant) []Implicant {
	seen := make(map[key]Implicant, len(implicants))
	var order []key

	for _, imp := range implicants {
		k := imp.key()
		if existing, ok := seen[k]; ok {
			if !equalCovered(existing.Covered, imp.Covered) {
				panic("qm: duplicate implicant bits with differing covered sets")
			}
			continue
		}
		seen[k] = imp
		order = append(order, k)
	}

	out := make([]Implicant, len(order))
	for i, k := range order {
		out[i] = seen[k]
	}
	return out
}
