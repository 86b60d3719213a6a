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

import "fmt"

const (
	storeValueTombstoneTag byte = 0x00
	storeValueExtantTag    byte = 0xff
)

// ErrStoreValueMalformed is returned when a StoreValue cannot be parsed.
var ErrStoreValueMalformed = fmt.Errorf("malformed store value")

// StoreValue is either a tombstone (the key was deleted at this version) or
// extant data carrying the raw bytes last written. It is the payload half
// of every KV record; the VKV layer is what gives those records a height.
type StoreValue struct {
	tombstone bool
	data      []byte
}

// TombstoneValue returns the tombstone marker.
func TombstoneValue() StoreValue {
	return StoreValue{tombstone: true}
}

// ExtantValue wraps data as a live value.
func ExtantValue(data []byte) StoreValue {
	return StoreValue{data: append([]byte(nil), data...)}
}

// IsTombstone reports whether this value represents a deletion.
func (v StoreValue) IsTombstone() bool {
	return v.tombstone
}

// Data returns the raw payload, or nil for a tombstone.
func (v StoreValue) Data() []byte {
	return v.data
}

// Marshal encodes the value as 0x00 for a tombstone, or 0xff followed by a
// varint length and the raw bytes for extant data.
func (v StoreValue) Marshal() []byte {
	if v.tombstone {
		return []byte{storeValueTombstoneTag}
	}
	buf := []byte{storeValueExtantTag}
	buf = EncodeVarint(buf, uint64(len(v.data)))
	return append(buf, v.data...)
}

// ParseStoreValue reads a StoreValue from its encoded form, returning the
// value and the number of bytes consumed.
func ParseStoreValue(data []byte) (StoreValue, int, error) {
	if len(data) < 1 {
		return StoreValue{}, 0, ErrStoreValueMalformed
	}
	switch data[0] {
	case storeValueTombstoneTag:
		return TombstoneValue(), 1, nil
	case storeValueExtantTag:
		length, consumed, err := DecodeVarint(data[1:])
		if err != nil {
			return StoreValue{}, 0, ErrStoreValueMalformed
		}
		start := 1 + consumed
		end := start + int(length)
		if len(data) < end {
			return StoreValue{}, 0, ErrStoreValueMalformed
		}
		return ExtantValue(data[start:end]), end, nil
	default:
		return StoreValue{}, 0, ErrStoreValueMalformed
	}
}
