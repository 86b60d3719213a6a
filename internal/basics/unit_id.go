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

import (
	"fmt"
	"strconv"
)

// UnitIdBytes is the fixed marshaled width of a UnitId.
const UnitIdBytes = 16

// UnitId is a 128-bit document identifier, held as (high, low) 64-bit
// halves since Go has no native 128-bit integer. Total order is the
// natural order of the pair.
type UnitId struct {
	hi uint64
	lo uint64
}

// ErrUnitIdMalformed is returned when a UnitId cannot be parsed from bytes
// or text.
var ErrUnitIdMalformed = fmt.Errorf("malformed unit id")

// NewUnitId builds a UnitId from a plain uint64, for the common case where
// 64 bits of id space is plenty.
func NewUnitId(low uint64) UnitId {
	return UnitId{lo: low}
}

// NewUnitIdFromParts builds a UnitId from explicit high/low 64-bit halves.
func NewUnitIdFromParts(hi, lo uint64) UnitId {
	return UnitId{hi: hi, lo: lo}
}

// Compare returns -1, 0, or 1 as a total order over UnitId.
func (id UnitId) Compare(other UnitId) int {
	if id.hi != other.hi {
		if id.hi < other.hi {
			return -1
		}
		return 1
	}
	if id.lo != other.lo {
		if id.lo < other.lo {
			return -1
		}
		return 1
	}
	return 0
}

// Marshal encodes id as 16 bytes, little-endian, low half first.
func (id UnitId) Marshal() []byte {
	buf := make([]byte, UnitIdBytes)
	for i := 0; i < 8; i++ {
		buf[i] = byte(id.lo >> (8 * i))
		buf[8+i] = byte(id.hi >> (8 * i))
	}
	return buf
}

// ParseUnitId reads a UnitId from its 16-byte encoding.
func ParseUnitId(data []byte) (UnitId, error) {
	if len(data) < UnitIdBytes {
		return UnitId{}, ErrUnitIdMalformed
	}
	var lo, hi uint64
	for i := 0; i < 8; i++ {
		lo |= uint64(data[i]) << (8 * i)
		hi |= uint64(data[8+i]) << (8 * i)
	}
	return UnitId{hi: hi, lo: lo}, nil
}

// ParseUnitIdString parses a base-10 string into a UnitId. Only the 64-bit
// range is supported, matching the id space this engine actually issues.
func ParseUnitIdString(s string) (UnitId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return UnitId{}, ErrUnitIdMalformed
	}
	return NewUnitId(v), nil
}

func (id UnitId) String() string {
	if id.hi == 0 {
		return strconv.FormatUint(id.lo, 10)
	}
	return fmt.Sprintf("%d:%d", id.hi, id.lo)
}
