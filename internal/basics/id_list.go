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
	"sort"
)

// ErrIdListMalformed is returned when an IdList cannot be parsed; its
// length must be a multiple of UnitIdBytes.
var ErrIdListMalformed = fmt.Errorf("malformed id list")

// IdList is an ordered, deduplicated set of unit ids, used as the value
// half of a reverse-index entry ("which units have property P == v").
// Order is sorted ascending so two lists with the same members always
// marshal identically, which keeps index values stable across rebuilds.
type IdList struct {
	ids []UnitId
}

// NewIdList builds an IdList from the given ids, sorting and deduplicating.
func NewIdList(ids ...UnitId) IdList {
	l := IdList{}
	for _, id := range ids {
		l = l.Push(id)
	}
	return l
}

// Ids returns the sorted, deduplicated member ids.
func (l IdList) Ids() []UnitId {
	return l.ids
}

// Len reports the number of members.
func (l IdList) Len() int {
	return len(l.ids)
}

// Contains reports whether id is a member.
func (l IdList) Contains(id UnitId) bool {
	_, found := l.search(id)
	return found
}

func (l IdList) search(id UnitId) (int, bool) {
	i := sort.Search(len(l.ids), func(i int) bool {
		return l.ids[i].Compare(id) >= 0
	})
	if i < len(l.ids) && l.ids[i].Compare(id) == 0 {
		return i, true
	}
	return i, false
}

// Push returns a new IdList with id inserted in sorted position, a no-op if
// id is already a member.
func (l IdList) Push(id UnitId) IdList {
	i, found := l.search(id)
	if found {
		return l
	}
	out := make([]UnitId, len(l.ids)+1)
	copy(out, l.ids[:i])
	out[i] = id
	copy(out[i+1:], l.ids[i:])
	return IdList{ids: out}
}

// Remove returns a new IdList with id removed, a no-op if id is not a
// member.
func (l IdList) Remove(id UnitId) IdList {
	i, found := l.search(id)
	if !found {
		return l
	}
	out := make([]UnitId, 0, len(l.ids)-1)
	out = append(out, l.ids[:i]...)
	out = append(out, l.ids[i+1:]...)
	return IdList{ids: out}
}

// Merge returns the union of l and other.
func (l IdList) Merge(other IdList) IdList {
	out := l
	for _, id := range other.ids {
		out = out.Push(id)
	}
	return out
}

// Marshal encodes the list as the concatenation of each member's 16-byte
// encoding, in sorted order.
func (l IdList) Marshal() []byte {
	buf := make([]byte, 0, len(l.ids)*UnitIdBytes)
	for _, id := range l.ids {
		buf = append(buf, id.Marshal()...)
	}
	return buf
}

// ParseIdList reads an IdList from its encoded form. data's length must be
// a multiple of UnitIdBytes.
func ParseIdList(data []byte) (IdList, error) {
	if len(data)%UnitIdBytes != 0 {
		return IdList{}, ErrIdListMalformed
	}
	ids := make([]UnitId, 0, len(data)/UnitIdBytes)
	for offset := 0; offset < len(data); offset += UnitIdBytes {
		id, err := ParseUnitId(data[offset : offset+UnitIdBytes])
		if err != nil {
			return IdList{}, err
		}
		ids = append(ids, id)
	}
	return NewIdList(ids...), nil
}
