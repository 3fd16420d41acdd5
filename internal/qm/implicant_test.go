package qm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombineWithAdjacentMinterms(t *testing.T) {
	a := singleton(0, 2) // 00
	b := singleton(1, 2) // 01
	merged, ok := combineWith(a, b)
	assert.True(t, ok)
	assert.Equal(t, uint64(0b10), merged.Mask) // bit 0 is dash, bit 1 is care
	assert.Equal(t, uint64(0b00), merged.Value)
	assert.ElementsMatch(t, []int{0, 1}, merged.Covered)
}

func TestCombineWithNonAdjacentFails(t *testing.T) {
	a := singleton(0, 2) // 00
	d := singleton(3, 2) // 11
	_, ok := combineWith(a, d)
	assert.False(t, ok)
}

func TestCombineWithSubsumption(t *testing.T) {
	// a = 0- (dash at bit 0, care bit1=0), covers {0,1}
	a := Implicant{Mask: 0b10, Value: 0b00, Covered: []int{0, 1}}
	// b = 00 (both care), covers {0}: a already subsumes b
	b := singleton(0, 2)
	merged, ok := combineWith(a, b)
	assert.True(t, ok)
	assert.Equal(t, a.Mask, merged.Mask)
	assert.Equal(t, a.Value, merged.Value)
	assert.ElementsMatch(t, []int{0, 1}, merged.Covered)
}

func TestOnesAndZerosPositions(t *testing.T) {
	// bits: position0=1, position1=dash, position2=0
	imp := Implicant{Mask: 0b101, Value: 0b001}
	assert.Equal(t, []int{0}, imp.OnesPositions(3))
	assert.Equal(t, []int{2}, imp.ZerosPositions(3))
	assert.Equal(t, 2, imp.LiteralCount(3))
}

func TestUnionSortedDedupes(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 5}, unionSorted([]int{1, 3, 5}, []int{2, 3}))
}
