package ecs

import (
	"math/bits"
	"strings"
)

// MaxComponents is the number of distinct component types a Signature can track.
const MaxComponents = 32

// ComponentId is the bit position of a component type within a Signature.
type ComponentId uint8

// Signature is a fixed-width bitset of component types. Entities carry one to
// describe which components they hold, systems carry one to describe which
// components they require.
type Signature uint32

// Set returns a copy of the signature with the given component bit enabled.
func (s Signature) Set(id ComponentId) Signature {
	return s | 1<<id
}

// Unset returns a copy of the signature with the given component bit cleared.
func (s Signature) Unset(id ComponentId) Signature {
	return s &^ (1 << id)
}

// Test reports whether the given component bit is set.
func (s Signature) Test(id ComponentId) bool {
	return s&(1<<id) != 0
}

// Contains reports whether every bit of sub is also set in s.
func (s Signature) Contains(sub Signature) bool {
	return s&sub == sub
}

// Count returns the number of set bits.
func (s Signature) Count() int {
	return bits.OnesCount32(uint32(s))
}

// IsEmpty reports whether no bits are set.
func (s Signature) IsEmpty() bool {
	return s == 0
}

// Ids returns the set component ids in ascending order.
func (s Signature) Ids() []ComponentId {
	ids := make([]ComponentId, 0, s.Count())
	for rest := uint32(s); rest != 0; rest &= rest - 1 {
		ids = append(ids, ComponentId(bits.TrailingZeros32(rest)))
	}
	return ids
}

// String renders the signature most-significant bit first, like a std bitset.
func (s Signature) String() string {
	var b strings.Builder
	b.Grow(MaxComponents)
	for i := MaxComponents - 1; i >= 0; i-- {
		if s.Test(ComponentId(i)) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}
