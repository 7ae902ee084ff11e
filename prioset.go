package activeobject

import (
	"math/bits"
	"sync/atomic"
)

// MaxPriority is the upper bound of MAX_ACTIVE: a PrioritySet can represent
// active-object priorities 1..=64, split across two 32-bit words.
const MaxPriority = 64

// PrioritySet is a compact bitmap of the active-object priorities that are
// currently ready to run. Bit n-1 of the low word represents priority n for
// n in 1..32; bit n-33 of the high word represents priority n for n in
// 33..64. All operations are O(1) and safe to call concurrently with the
// scheduler's reads, provided every mutation happens under the framework's
// [CritSection] (see [CritSection] for the full contract).
//
// Both words are always present; a PrioritySet constructed for a MAX_ACTIVE
// of 32 or less simply never has its high word touched, which collapses to
// identical behavior to a single-word representation at negligible memory
// cost and without the need for two distinct exported types.
type PrioritySet struct {
	low  atomic.Uint32
	high atomic.Uint32
}

// Clear removes every member from the set.
func (s *PrioritySet) Clear() {
	s.low.Store(0)
	s.high.Store(0)
}

// IsEmpty reports whether the set has no members. Each word is read at most
// once, so a racing insert cannot be observed as a torn combination of old
// and new state.
func (s *PrioritySet) IsEmpty() bool {
	if s.low.Load() != 0 {
		return false
	}
	return s.high.Load() == 0
}

// NotEmpty is the complement of [PrioritySet.IsEmpty].
func (s *PrioritySet) NotEmpty() bool {
	return !s.IsEmpty()
}

// Has reports whether priority n is a member of the set. n must be in
// 1..=64.
func (s *PrioritySet) Has(n uint8) bool {
	word, bit := s.wordAndBit(n)
	return word.Load()&bit != 0
}

// Insert adds priority n to the set. n must be in 1..=64.
func (s *PrioritySet) Insert(n uint8) {
	word, bit := s.wordAndBit(n)
	for {
		old := word.Load()
		if old&bit != 0 {
			return
		}
		if word.CompareAndSwap(old, old|bit) {
			return
		}
	}
}

// Remove deletes priority n from the set. n must be in 1..=64.
func (s *PrioritySet) Remove(n uint8) {
	word, bit := s.wordAndBit(n)
	for {
		old := word.Load()
		if old&bit == 0 {
			return
		}
		if word.CompareAndSwap(old, old&^bit) {
			return
		}
	}
}

// FindMax returns the largest priority in the set, or 0 if the set is
// empty. The high word is checked first; log2 here is the 1-based
// "highest set bit" function (log2(0) == 0), implemented via
// bits.Len32, which compiles to a hardware count-leading-zeros
// instruction on every platform the Go toolchain targets.
func (s *PrioritySet) FindMax() uint8 {
	if high := s.high.Load(); high != 0 {
		return uint8(bits.Len32(high)) + 32
	}
	return uint8(bits.Len32(s.low.Load()))
}

// wordAndBit resolves priority n to its backing word and bitmask.
func (s *PrioritySet) wordAndBit(n uint8) (*atomic.Uint32, uint32) {
	assert("prioset", 1, n >= 1 && n <= MaxPriority, "priority out of range 1..64")
	if n <= 32 {
		return &s.low, uint32(1) << (n - 1)
	}
	return &s.high, uint32(1) << (n - 33)
}
