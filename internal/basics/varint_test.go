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

func TestEncodeVarintWidths(t *testing.T) {
	cases := []struct {
		v    uint64
		want []byte
	}{
		{0, []byte{0x00}},
		{0xfc, []byte{0xfc}},
		{0xff, []byte{0xfd, 0xff, 0x00}},
		{0x12345678, []byte{0xfe, 0x78, 0x56, 0x34, 0x12}},
		{0xffffffffffffffff, append([]byte{0xff}, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff)},
	}
	for _, c := range cases {
		got := EncodeVarint(nil, c.v)
		require.Equal(t, c.want, got)
	}
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 0xfc, 0xfd, 0xff, 0x100, 0xffff, 0x10000, 0xffffffff, 0x100000000, ^uint64(0)}
	for _, v := range values {
		encoded := EncodeVarint(nil, v)
		decoded, width, err := DecodeVarint(encoded)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
		require.Equal(t, len(encoded), width)
	}
}

func TestDecodeVarintMalformed(t *testing.T) {
	_, _, err := DecodeVarint(nil)
	require.ErrorIs(t, err, ErrVarintMalformed)

	_, _, err = DecodeVarint([]byte{0xfd, 0x01})
	require.ErrorIs(t, err, ErrVarintMalformed)

	_, _, err = DecodeVarint([]byte{0xff, 0x01, 0x02})
	require.ErrorIs(t, err, ErrVarintMalformed)
}
