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

package executor

import (
	json "github.com/goccy/go-json"

	"github.com/immux/immuxdb/internal/basics"
)

// reverseIndex accumulates, in memory, which ids should be added to which
// (name, property) bucket before a single batch of SetTarget writes makes
// it durable. PropertyName/UnitContent aren't comparable (UnitContent can
// hold a float64 slice-backed string), so the map key is the pair's
// marshaled byte form.
type reverseIndex struct {
	entries map[reverseIndexKey]*reverseIndexEntry
}

type reverseIndexKey struct {
	name     string
	property string
}

type reverseIndexEntry struct {
	name     basics.PropertyName
	property []byte
	ids      basics.IdList
}

// newReverseIndex creates an empty reverse index.
func newReverseIndex() *reverseIndex {
	return &reverseIndex{entries: make(map[reverseIndexKey]*reverseIndexEntry)}
}

// addToIndex registers id as matching name == propertyBytes.
func (r *reverseIndex) addToIndex(name basics.PropertyName, propertyBytes []byte, id basics.UnitId) {
	key := reverseIndexKey{name: name.String(), property: string(propertyBytes)}
	entry, ok := r.entries[key]
	if !ok {
		entry = &reverseIndexEntry{name: name, property: propertyBytes}
		r.entries[key] = entry
	}
	entry.ids = entry.ids.Push(id)
}

// indexNewJSON looks up targetName on a decoded JSON document and, if
// present and one of the indexable scalar kinds, registers id against it.
// A missing field is not an error: most documents in a grouping won't have
// every indexed property. An unsupported JSON type (array, object) is,
// matching the source engine's ReverseIndexError::UnimplementedIndexingPropertyType.
func (r *reverseIndex) indexNewJSON(id basics.UnitId, doc map[string]interface{}, targetName basics.PropertyName) error {
	raw, present := doc[targetName.String()]
	if !present {
		return nil
	}
	var content basics.UnitContent
	switch v := raw.(type) {
	case string:
		content = basics.StringContent(v)
	case bool:
		content = basics.BoolContent(v)
	case float64:
		content = basics.Float64Content(v)
	case nil:
		content = basics.NilContent()
	default:
		return ErrUnimplementedIndexingPropertyType
	}
	r.addToIndex(targetName, content.Marshal(), id)
	return nil
}

// get reports the ids currently indexed under name == property.
func (r *reverseIndex) get(name basics.PropertyName, property basics.UnitContent) basics.IdList {
	key := reverseIndexKey{name: name.String(), property: string(property.Marshal())}
	if entry, ok := r.entries[key]; ok {
		return entry.ids
	}
	return basics.IdList{}
}

// all returns every populated (name, property) bucket this index
// holds, in no particular order.
func (r *reverseIndex) all() []*reverseIndexEntry {
	out := make([]*reverseIndexEntry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	return out
}

// decodeJSONObject parses raw as a JSON object, returning (nil, false) for
// any content that doesn't parse as one — including non-JSON content and
// JSON arrays/scalars, neither of which this engine indexes.
func decodeJSONObject(raw string) (map[string]interface{}, bool) {
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, false
	}
	obj, ok := v.(map[string]interface{})
	return obj, ok
}
