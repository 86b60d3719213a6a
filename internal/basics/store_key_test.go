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
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStoreKeyRoundTrip(t *testing.T) {
	spec := NewUnitSpecifier(NewGroupingLabel([]byte("books")), NewUnitId(42))
	key := NewStoreKey(spec)

	require.True(t, bytes.HasPrefix(key.Bytes(), GroupingPrefix(spec.Grouping)))

	decoded, err := ParseStoreKey(key.Bytes())
	require.NoError(t, err)
	require.True(t, decoded.Grouping.Equal(spec.Grouping))
	require.Equal(t, 0, decoded.Id.Compare(spec.Id))
}

func TestStoreKeySharedGroupingPrefix(t *testing.T) {
	grouping := NewGroupingLabel([]byte("books"))
	k1 := NewStoreKey(NewUnitSpecifier(grouping, NewUnitId(1)))
	k2 := NewStoreKey(NewUnitSpecifier(grouping, NewUnitId(2)))

	prefix := GroupingPrefix(grouping)
	require.True(t, bytes.HasPrefix(k1.Bytes(), prefix))
	require.True(t, bytes.HasPrefix(k2.Bytes(), prefix))
}
