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

func TestUnitIdRoundTrip(t *testing.T) {
	ids := []UnitId{
		NewUnitId(0),
		NewUnitId(1),
		NewUnitId(0xdeadbeef),
		NewUnitIdFromParts(0x1, 0x2),
	}
	for _, id := range ids {
		encoded := id.Marshal()
		require.Len(t, encoded, UnitIdBytes)
		decoded, err := ParseUnitId(encoded)
		require.NoError(t, err)
		require.Equal(t, 0, id.Compare(decoded))
	}
}

func TestUnitIdOrdering(t *testing.T) {
	a := NewUnitId(1)
	b := NewUnitId(2)
	require.Equal(t, -1, a.Compare(b))
	require.Equal(t, 1, b.Compare(a))
	require.Equal(t, 0, a.Compare(a))
}

func TestParseUnitIdTruncated(t *testing.T) {
	_, err := ParseUnitId([]byte{1, 2, 3})
	require.ErrorIs(t, err, ErrUnitIdMalformed)
}
