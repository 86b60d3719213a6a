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

// Varint is the compact unsigned 64-bit little-endian encoding used
// throughout the on-disk keyspace: a leading byte of 0x00-0xfc is the value
// itself; 0xfd, 0xfe, 0xff mean "read the following 2, 4, or 8 bytes
// little-endian". Encoding always picks the narrowest tag that fits.
const (
	varintTag2 = 0xfd
	varintTag4 = 0xfe
	varintTag8 = 0xff
)

// ErrVarintMalformed is returned when a varint cannot be decoded from the
// given bytes, either because the tag byte is missing or the payload is
// truncated.
var ErrVarintMalformed = fmt.Errorf("malformed varint")

// EncodeVarint appends the varint encoding of v to dst and returns the
// result.
func EncodeVarint(dst []byte, v uint64) []byte {
	switch {
	case v < varintTag2:
		return append(dst, byte(v))
	case v <= 0xffff:
		dst = append(dst, varintTag2)
		dst = append(dst, byte(v), byte(v>>8))
		return dst
	case v <= 0xffffffff:
		dst = append(dst, varintTag4)
		dst = append(dst, byte(v), byte(v>>8), byte(v>>16), byte(v>>24))
		return dst
	default:
		dst = append(dst, varintTag8)
		for i := 0; i < 8; i++ {
			dst = append(dst, byte(v>>(8*i)))
		}
		return dst
	}
}

// DecodeVarint reads a varint from the start of data, returning the decoded
// value and the number of bytes consumed.
func DecodeVarint(data []byte) (uint64, int, error) {
	if len(data) == 0 {
		return 0, 0, ErrVarintMalformed
	}
	tag := data[0]
	switch tag {
	case varintTag2:
		if len(data) < 3 {
			return 0, 0, ErrVarintMalformed
		}
		return uint64(data[1]) | uint64(data[2])<<8, 3, nil
	case varintTag4:
		if len(data) < 5 {
			return 0, 0, ErrVarintMalformed
		}
		v := uint64(data[1]) | uint64(data[2])<<8 | uint64(data[3])<<16 | uint64(data[4])<<24
		return v, 5, nil
	case varintTag8:
		if len(data) < 9 {
			return 0, 0, ErrVarintMalformed
		}
		var v uint64
		for i := 0; i < 8; i++ {
			v |= uint64(data[1+i]) << (8 * i)
		}
		return v, 9, nil
	default:
		return uint64(tag), 1, nil
	}
}
