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

func TestStoreValueTombstone(t *testing.T) {
	v := TombstoneValue()
	require.Equal(t, []byte{0x00}, v.Marshal())

	decoded, n, err := ParseStoreValue(v.Marshal())
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.True(t, decoded.IsTombstone())
}

func TestStoreValueExtantRoundTrip(t *testing.T) {
	v := ExtantValue([]byte("payload"))
	encoded := v.Marshal()
	require.Equal(t, byte(0xff), encoded[0])

	decoded, n, err := ParseStoreValue(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.False(t, decoded.IsTombstone())
	require.Equal(t, []byte("payload"), decoded.Data())
}

func TestStoreValueMalformed(t *testing.T) {
	_, _, err := ParseStoreValue(nil)
	require.ErrorIs(t, err, ErrStoreValueMalformed)

	_, _, err = ParseStoreValue([]byte{0xff, 0xfd, 0x05})
	require.ErrorIs(t, err, ErrStoreValueMalformed)

	_, _, err = ParseStoreValue([]byte{0x01})
	require.ErrorIs(t, err, ErrStoreValueMalformed)
}
