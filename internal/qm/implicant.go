package qm

import "math/bits"

// Implicant is a cube in the Boolean lattice, represented as a pair of
// bitsets: Mask has a 1 at every "care" (definite 0/1) position, Value
// holds the bit values at those positions, and a cleared Mask bit denotes
// DASH ("any"). Covered holds the ascending-sorted minterm indices this
// cube subsumes; it is never recomputed from the bits, only unioned from
// parents, preserving the invariant that it is always a subset of the
// original minterm universe.
type Implicant struct {
	Mask    uint64
	Value   uint64
	Covered []int
}

// key is the canonical equality/hash key for an Implicant: bits alone.
type key struct {
	mask  uint64
	value uint64
}

func (imp Implicant) key() key {
	return key{mask: imp.Mask, value: imp.Value}
}

// singleton builds the Implicant wrapping exactly one minterm of an
// n-variable problem: every position is "care", valued from idx's bits.
func singleton(idx int, n int) Implicant {
	mask := fullMask(n)
	return Implicant{Mask: mask, Value: uint64(idx) & mask, Covered: []int{idx}}
}

func fullMask(n int) uint64 {
	if n <= 0 {
		return 0
	}
	return (uint64(1) << uint(n)) - 1
}

// combineWith merges a and b when they are adjacent along exactly one
// axis, or when one's DASH pattern is a strict superset of the other's
// over identical care values ("subsumes").
func combineWith(a, b Implicant) (Implicant, bool) {
	diff := (a.Mask & b.Mask) & (a.Value ^ b.Value)
	aDashOnly := (^a.Mask) & b.Mask
	bDashOnly := (^b.Mask) & a.Mask

	switch {
	case diff == 0 && aDashOnly != 0 && bDashOnly == 0:
		return Implicant{Mask: a.Mask, Value: a.Value, Covered: unionSorted(a.Covered, b.Covered)}, true
	case diff == 0 && bDashOnly != 0 && aDashOnly == 0:
		return Implicant{Mask: b.Mask, Value: b.Value, Covered: unionSorted(a.Covered, b.Covered)}, true
	case bits.OnesCount64(diff) == 1 && aDashOnly == 0 && bDashOnly == 0:
		return Implicant{
			Mask:    a.Mask &^ diff,
			Value:   a.Value &^ diff,
			Covered: unionSorted(a.Covered, b.Covered),
		}, true
	default:
		return Implicant{}, false
	}
}

// OnesPositions returns the bit positions, ascending, where the implicant
// is definitely 1 (care and set).
func (imp Implicant) OnesPositions(n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		bit := uint64(1) << uint(i)
		if imp.Mask&bit != 0 && imp.Value&bit != 0 {
			out = append(out, i)
		}
	}
	return out
}

// ZerosPositions returns the bit positions, ascending, where the implicant
// is definitely 0 (care and clear).
func (imp Implicant) ZerosPositions(n int) []int {
	var out []int
	for i := 0; i < n; i++ {
		bit := uint64(1) << uint(i)
		if imp.Mask&bit != 0 && imp.Value&bit == 0 {
			out = append(out, i)
		}
	}
	return out
}

// LiteralCount is the number of definite (non-DASH) positions: n minus the
// count of DASH positions.
func (imp Implicant) LiteralCount(n int) int {
	return bits.OnesCount64(imp.Mask & fullMask(n))
}

// unionSorted merges two ascending, duplicate-free int slices into one.
func unionSorted(a, b []int) []int {
	out := make([]int, 0, len(a)+len(b))
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			out = append(out, a[i])
			i++
		case a[i] > b[j]:
			out = append(out, b[j])
			j++
		default:
			out = append(out, a[i])
			i++
			j++
		}
	}
	out = append(out, a[i:]...)
	out = append(out, b[j:]...)
	return out
}

func equalCovered(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
