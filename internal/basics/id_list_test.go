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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIdListDedupAndSort(t *testing.T) {
	l := NewIdList(NewUnitId(3), NewUnitId(1), NewUnitId(2), NewUnitId(1))
	require.Equal(t, 3, l.Len())
	ids := l.Ids()
	require.Equal(t, 0, ids[0].Compare(NewUnitId(1)))
	require.Equal(t, 0, ids[1].Compare(NewUnitId(2)))
	require.Equal(t, 0, ids[2].Compare(NewUnitId(3)))
}

func TestIdListPushRemove(t *testing.T) {
	l := NewIdList(NewUnitId(1))
	l2 := l.Push(NewUnitId(2))
	require.Equal(t, 2, l2.Len())
	require.True(t, l2.Contains(NewUnitId(2)))

	l3 := l2.Remove(NewUnitId(1))
	require.Equal(t, 1, l3.Len())
	require.False(t, l3.Contains(NewUnitId(1)))
}

func TestIdListMerge(t *testing.T) {
	a := NewIdList(NewUnitId(1), NewUnitId(2))
	b := NewIdList(NewUnitId(2), NewUnitId(3))
	merged := a.Merge(b)
	require.Equal(t, 3, merged.Len())
}

func TestIdListMarshalRoundTrip(t *testing.T) {
	l := NewIdList(NewUnitId(5), NewUnitId(1), NewUnitId(9))
	encoded := l.Marshal()
	require.Len(t, encoded, 3*UnitIdBytes)

	decoded, err := ParseIdList(encoded)
	require.NoError(t, err)
	require.Equal(t, l.Marshal(), decoded.Marshal())
}

func TestIdListMarshalDeterministic(t *testing.T) {
	a := NewIdList(NewUnitId(1), NewUnitId(2))
	b := NewIdList(NewUnitId(2), NewUnitId(1))
	require.Equal(t, a.Marshal(), b.Marshal())
}

func TestIdListMalformed(t *testing.T) {
	_, err := ParseIdList([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrIdListMalformed)
}
