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

// MaxGroupingLabelLength is the longest grouping label this engine accepts.
// Labels longer than this are truncated, matching the source engine rather
// than rejecting the insert outright.
const MaxGroupingLabelLength = 128

// GroupingLabel names the collection ("grouping") a unit belongs to. It is
// marshaled as a single length byte followed by that many raw bytes, so it
// can never exceed MaxGroupingLabelLength.
type GroupingLabel struct {
	bytes []byte
}

// ErrGroupingLabelMalformed is returned when a grouping label cannot be
// parsed from its encoded form.
var ErrGroupingLabelMalformed = fmt.Errorf("malformed grouping label")

// NewGroupingLabel builds a GroupingLabel from raw bytes, truncating to
// MaxGroupingLabelLength if necessary.
func NewGroupingLabel(raw []byte) GroupingLabel {
	if len(raw) > MaxGroupingLabelLength {
		raw = raw[:MaxGroupingLabelLength]
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return GroupingLabel{bytes: out}
}

// Bytes returns the label's raw content.
func (g GroupingLabel) Bytes() []byte {
	return g.bytes
}

func (g GroupingLabel) String() string {
	return string(g.bytes)
}

// Equal reports whether two labels hold identical bytes.
func (g GroupingLabel) Equal(other GroupingLabel) bool {
	if len(g.bytes) != len(other.bytes) {
		return false
	}
	for i := range g.bytes {
		if g.bytes[i] != other.bytes[i] {
			return false
		}
	}
	return true
}

// Marshal encodes the label as a one-byte length prefix followed by its
// bytes.
func (g GroupingLabel) Marshal() []byte {
	buf := make([]byte, 1+len(g.bytes))
	buf[0] = byte(len(g.bytes))
	copy(buf[1:], g.bytes)
	return buf
}

// ParseGroupingLabel reads a GroupingLabel from its encoded form, returning
// the label and the number of bytes consumed.
func ParseGroupingLabel(data []byte) (GroupingLabel, int, error) {
	if len(data) < 1 {
		return GroupingLabel{}, 0, ErrGroupingLabelMalformed
	}
	n := int(data[0])
	if len(data) < 1+n {
		return GroupingLabel{}, 0, ErrGroupingLabelMalformed
	}
	return NewGroupingLabel(data[1 : 1+n]), 1 + n, nil
}
