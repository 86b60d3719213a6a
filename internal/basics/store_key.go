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

// ErrStoreKeyMalformed is returned when a StoreKey cannot be parsed.
var ErrStoreKeyMalformed = fmt.Errorf("malformed store key")

// UnitSpecifier names a unit by its grouping and id, independent of any
// particular store key encoding. It is the externally visible handle used
// by Insert/Select/CreateIndex callers.
type UnitSpecifier struct {
	Grouping GroupingLabel
	Id       UnitId
}

// NewUnitSpecifier builds a UnitSpecifier.
func NewUnitSpecifier(grouping GroupingLabel, id UnitId) UnitSpecifier {
	return UnitSpecifier{Grouping: grouping, Id: id}
}

// StoreKey is the byte string under which a unit journal lives in the
// VKV keyspace, formed by concatenating the grouping label's encoding with
// the unit id's encoding. The grouping prefix is what makes per-grouping
// prefix scans (GetAllInGrouping) possible.
type StoreKey struct {
	bytes []byte
}

// NewStoreKey derives the StoreKey for a given unit specifier.
func NewStoreKey(spec UnitSpecifier) StoreKey {
	buf := spec.Grouping.Marshal()
	buf = append(buf, spec.Id.Marshal()...)
	return StoreKey{bytes: buf}
}

// Bytes returns the raw key bytes.
func (k StoreKey) Bytes() []byte {
	return k.bytes
}

// ParseStoreKey reconstructs the grouping/id pair from an encoded StoreKey,
// the inverse of NewStoreKey.
func ParseStoreKey(data []byte) (UnitSpecifier, error) {
	grouping, n, err := ParseGroupingLabel(data)
	if err != nil {
		return UnitSpecifier{}, err
	}
	id, err := ParseUnitId(data[n:])
	if err != nil {
		return UnitSpecifier{}, err
	}
	return NewUnitSpecifier(grouping, id), nil
}

// GroupingPrefix returns the byte prefix shared by every StoreKey in the
// given grouping, usable as a scan prefix.
func GroupingPrefix(grouping GroupingLabel) []byte {
	return grouping.Marshal()
}

// NewRawStoreKey wraps pre-built bytes directly as a StoreKey, mirroring
// the source engine's StoreKey::new(&[u8])/StoreKey::from(Vec<u8>)
// constructors. The executor uses this for the auxiliary keys that don't
// follow the grouping+id encoding — the per-grouping indexed-names list and
// the per-property reverse-index buckets — each tagged with its own leading
// kv.Sigil byte so they don't collide with ordinary unit keys in the shared
// journal keyspace.
func NewRawStoreKey(raw []byte) StoreKey {
	out := make([]byte, len(raw))
	copy(out, raw)
	return StoreKey{bytes: out}
}
