// Package format renders a chosen prime-implicant cover back to SOP text.
package format

import (
	"sort"
	"strings"

	"boolmin/internal/qm"
)

// Format renders cover over the given (lexicographically sorted) variable
// names as a sum-of-products string. An empty cover (unsatisfiable
// expression) renders as "0"; a cover consisting of a single all-DASH
// implicant (a tautology) renders as "1".
func Format(variables []string, cover []qm.Implicant) string {
	if len(cover) == 0 {
		return "0"
	}

	ordered := make([]qm.Implicant, len(cover))
	copy(ordered, cover)
	sort.Slice(ordered, func(i, j int) bool {
		return ordered[i].Covered[0] < ordered[j].Covered[0]
	})

	products := make([]string, len(ordered))
	for i, imp := range ordered {
		products[i] = formatImplicant(variables, imp)
	}
	return strings.Join(products, " | ")
}

func formatImplicant(variables []string, imp qm.Implicant) string {
	var literals []string
	for i, name := range variables {
		bit := uint64(1) << uint(i)
		switch {
		case imp.Mask&bit == 0:
			continue // DASH: omitted
		case imp.Value&bit != 0:
			literals = append(literals, name)
		default:
			literals = append(literals, "!"+name)
		}
	}

	switch len(literals) {
	case 0:
		// All-DASH implicant: the expression is a tautology.
		return "1"
	case 1:
		return literals[0]
	default:
		return "(" + strings.Join(literals, " & ") + ")"
	}
}
