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
	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/kv"
)

// indexedNamesListKey addresses the per-grouping list of property names
// currently backed by a reverse index. One exists per grouping, independent
// of how many units it holds.
func indexedNamesListKey(grouping basics.GroupingLabel) basics.StoreKey {
	buf := kv.SigilGroupingIndexedNames.Prefix()
	buf = append(buf, grouping.Marshal()...)
	return basics.NewRawStoreKey(buf)
}

// reverseIndexBucketKey addresses the id-list backing "grouping has a unit
// where name == property", one per distinct (grouping, name, property)
// triple ever indexed.
func reverseIndexBucketKey(grouping basics.GroupingLabel, name basics.PropertyName, propertyBytes []byte) basics.StoreKey {
	buf := kv.SigilReverseIndexIdList.Prefix()
	buf = append(buf, grouping.Marshal()...)
	buf = append(buf, name.Marshal()...)
	buf = basics.EncodeVarint(buf, uint64(len(propertyBytes)))
	buf = append(buf, propertyBytes...)
	return basics.NewRawStoreKey(buf)
}

func unitStoreKey(grouping basics.GroupingLabel, id basics.UnitId) basics.StoreKey {
	return basics.NewStoreKey(basics.NewUnitSpecifier(grouping, id))
}
