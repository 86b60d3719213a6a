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
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitContentTagBytes(t *testing.T) {
	require.Equal(t, []byte{0x00}, NilContent().Marshal())
	require.Equal(t, byte(0x10), StringContent("hi").Marshal()[0])
	require.Equal(t, byte(0x11), BoolContent(true).Marshal()[0])
	require.Equal(t, byte(0x12), Float64Content(1.5).Marshal()[0])
	require.Equal(t, byte(0x21), JSONStringContent("{}").Marshal()[0])
	require.Equal(t, byte(0x22), BSONBytesContent([]byte{1, 2}).Marshal()[0])
	require.Equal(t, byte(0xff), BytesContent([]byte{1, 2}).Marshal()[0])
}

func TestUnitContentRoundTrip(t *testing.T) {
	cases := []UnitContent{
		NilContent(),
		StringContent("hello world"),
		BoolContent(true),
		BoolContent(false),
		Float64Content(3.14159),
		Float64Content(-0.0),
		Float64Content(math.NaN()),
		JSONStringContent(`{"a":1}`),
		BSONBytesContent([]byte{0xde, 0xad}),
		BytesContent([]byte{}),
		BytesContent([]byte{1, 2, 3, 4, 5}),
	}
	for _, c := range cases {
		encoded := c.Marshal()
		decoded, n, err := ParseUnitContent(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoded), n)
		require.Equal(t, c.Kind(), decoded.Kind())
		require.True(t, c.EqualStrict(decoded))
	}
}

func TestUnitContentEqualStrictBitwise(t *testing.T) {
	nan1 := Float64Content(math.NaN())
	nan2 := Float64Content(math.NaN())
	require.True(t, nan1.EqualStrict(nan2))

	zero := Float64Content(0.0)
	negZero := Float64Content(math.Copysign(0, -1))
	require.False(t, zero.EqualStrict(negZero))
}

func TestUnitContentMalformed(t *testing.T) {
	_, _, err := ParseUnitContent(nil)
	require.ErrorIs(t, err, ErrUnitContentMalformed)

	_, _, err = ParseUnitContent([]byte{0x12, 0x01})
	require.ErrorIs(t, err, ErrUnitContentMalformed)

	_, _, err = ParseUnitContent([]byte{0x99})
	require.ErrorIs(t, err, ErrUnitContentMalformed)
}

func TestUnitContentEqualJSONValue(t *testing.T) {
	require.True(t, Float64Content(42).EqualJSONValue([]byte("42")))
	require.True(t, StringContent("x").EqualJSONValue([]byte(`"x"`)))
	require.True(t, BoolContent(true).EqualJSONValue([]byte("true")))
	require.False(t, Float64Content(42).EqualJSONValue([]byte("43")))
}
