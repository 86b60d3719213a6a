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

// HeightList is the ordered record of every height at which a given key
// was written, kept inline in that key's UnitJournal. Heights are always
// appended in increasing order, which lets callers binary-search or
// take-while over it without re-sorting.
type HeightList struct {
	raw []byte
}

// NewHeightList builds a HeightList from the given heights, in the order
// given.
func NewHeightList(heights ...ChainHeight) HeightList {
	l := HeightList{}
	for _, h := range heights {
		l.raw = append(l.raw, h.Marshal()...)
	}
	return l
}

// Push appends height to the list.
func (l *HeightList) Push(height ChainHeight) {
	l.raw = append(l.raw, height.Marshal()...)
}

// Heights decodes and returns every height in the list, in stored order.
func (l HeightList) Heights() []ChainHeight {
	var out []ChainHeight
	offset := 0
	for offset < len(l.raw) {
		h, n, err := ParseChainHeight(l.raw[offset:])
		if err != nil {
			break
		}
		out = append(out, h)
		offset += n
	}
	return out
}

// Marshal encodes the list as a varint byte-length prefix followed by the
// concatenated per-height varints.
func (l HeightList) Marshal() []byte {
	buf := EncodeVarint(nil, uint64(len(l.raw)))
	return append(buf, l.raw...)
}

// ParseHeightList reads a HeightList from its encoded form, returning the
// list and the number of bytes consumed.
func ParseHeightList(data []byte) (HeightList, int, error) {
	length, consumed, err := DecodeVarint(data)
	if err != nil {
		return HeightList{}, 0, err
	}
	end := consumed + int(length)
	if len(data) < end {
		return HeightList{}, 0, ErrVarintMalformed
	}
	raw := make([]byte, length)
	copy(raw, data[consumed:end])
	return HeightList{raw: raw}, end, nil
}
