// Copyright 2026 The ImmuxDB Authors
// This file is part of ImmuxDB.
//
// ImmuxDB is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// ImmuxDB is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with ImmuxDB. If not, see <http://www.gnu.org/licenses/>.

package basics

// ChainHeight is the monotonically increasing counter stamped on every
// write: height 0 is "before any write ever happened", and each successful
// SetMany/RevertMany/RevertAll instruction increments it by exactly one
// regardless of how many keys it touches.
type ChainHeight struct {
	value uint64
}

// NewChainHeight wraps a raw counter value.
func NewChainHeight(v uint64) ChainHeight {
	return ChainHeight{value: v}
}

// ZeroChainHeight is the height of a freshly created, never-written-to
// chain.
var ZeroChainHeight = ChainHeight{}

// AsUint64 returns the raw counter value.
func (h ChainHeight) AsUint64() uint64 {
	return h.value
}

// IsZero reports whether this is the zero height.
func (h ChainHeight) IsZero() bool {
	return h.value == 0
}

// Increment returns h+1.
func (h ChainHeight) Increment() ChainHeight {
	return ChainHeight{value: h.value + 1}
}

// Decrement returns h-1. Callers must not call this at zero.
func (h ChainHeight) Decrement() ChainHeight {
	return ChainHeight{value: h.value - 1}
}

// Compare returns -1, 0, or 1, the natural order over heights.
func (h ChainHeight) Compare(other ChainHeight) int {
	switch {
	case h.value < other.value:
		return -1
	case h.value > other.value:
		return 1
	default:
		return 0
	}
}

// Before reports h < other.
func (h ChainHeight) Before(other ChainHeight) bool {
	return h.value < other.value
}

// AtOrAfter reports h >= other.
func (h ChainHeight) AtOrAfter(other ChainHeight) bool {
	return h.value >= other.value
}

// Marshal encodes the height as a varint, the minimal-width scheme used
// throughout the keyspace.
func (h ChainHeight) Marshal() []byte {
	return EncodeVarint(nil, h.value)
}

// ParseChainHeight reads a ChainHeight from its varint encoding, returning
// the height and the number of bytes consumed.
func ParseChainHeight(data []byte) (ChainHeight, int, error) {
	v, n, err := DecodeVarint(data)
	if err != nil {
		return ChainHeight{}, 0, err
	}
	return ChainHeight{value: v}, n, nil
}
