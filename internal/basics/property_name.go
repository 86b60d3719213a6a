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

// ErrPropertyNameMalformed is returned when a property name cannot be
// parsed from its encoded form.
var ErrPropertyNameMalformed = fmt.Errorf("malformed property name")

// PropertyName is a JSON object key eligible for indexing. Like
// GroupingLabel it marshals as a one-byte length prefix plus raw bytes.
type PropertyName struct {
	bytes []byte
}

// NewPropertyName builds a PropertyName from a Go string.
func NewPropertyName(s string) PropertyName {
	return PropertyName{bytes: []byte(s)}
}

func (p PropertyName) String() string {
	return string(p.bytes)
}

// Equal reports whether two property names hold identical bytes.
func (p PropertyName) Equal(other PropertyName) bool {
	if len(p.bytes) != len(other.bytes) {
		return false
	}
	for i := range p.bytes {
		if p.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// Marshal encodes the name as a one-byte length prefix followed by its
// bytes.
func (p PropertyName) Marshal() []byte {
	buf := make([]byte, 1+len(p.bytes))
	buf[0] = byte(len(p.bytes))
	copy(buf[1:], p.bytes)
	return buf
}

// ParsePropertyName reads a PropertyName from its encoded form, returning
// the name and the number of bytes consumed.
func ParsePropertyName(data []byte) (PropertyName, int, error) {
	if len(data) < 1 {
		return PropertyName{}, 0, ErrPropertyNameMalformed
	}
	n := int(data[0])
	if len(data) < 1+n {
		return PropertyName{}, 0, ErrPropertyNameMalformed
	}
	return NewPropertyName(string(data[1 : 1+n])), 1 + n, nil
}

// PropertyNameList is an ordered set of property names, marshaled as a
// varint count followed by each marshaled name. Used to record which
// properties of a grouping are currently indexed.
type PropertyNameList struct {
	names []PropertyName
}

// NewPropertyNameList builds a PropertyNameList from the given names,
// preserving order and not deduplicating — callers that need a set append
// through Contains first.
func NewPropertyNameList(names ...PropertyName) PropertyNameList {
	out := make([]PropertyName, len(names))
	copy(out, names)
	return PropertyNameList{names: out}
}

// Names returns the underlying slice of names.
func (l PropertyNameList) Names() []PropertyName {
	return l.names
}

// Contains reports whether name already appears in the list.
func (l PropertyNameList) Contains(name PropertyName) bool {
	for _, n := range l.names {
		if n.Equal(name) {
			return true
		}
	}
	return false
}

// Append returns a new list with name appended if not already present.
func (l PropertyNameList) Append(name PropertyName) PropertyNameList {
	if l.Contains(name) {
		return l
	}
	out := make([]PropertyName, len(l.names), len(l.names)+1)
	copy(out, l.names)
	out = append(out, name)
	return PropertyNameList{names: out}
}

// Marshal encodes the list as a varint count followed by each name's
// encoding.
func (l PropertyNameList) Marshal() []byte {
	buf := EncodeVarint(nil, uint64(len(l.names)))
	for _, n := range l.names {
		buf = append(buf, n.Marshal()...)
	}
	return buf
}

// ParsePropertyNameList reads a PropertyNameList from its encoded form.
func ParsePropertyNameList(data []byte) (PropertyNameList, int, error) {
	count, consumed, err := DecodeVarint(data)
	if err != nil {
		return PropertyNameList{}, 0, err
	}
	names := make([]PropertyName, 0, count)
	offset := consumed
	for i := uint64(0); i < count; i++ {
		name, n, err := ParsePropertyName(data[offset:])
		if err != nil {
			return PropertyNameList{}, 0, err
		}
		names = append(names, name)
		offset += n
	}
	return PropertyNameList{names: names}, offset, nil
}
