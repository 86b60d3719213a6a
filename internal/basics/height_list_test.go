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

func TestHeightListMarshalExactBytes(t *testing.T) {
	l := NewHeightList(NewChainHeight(0x12345678), NewChainHeight(0), NewChainHeight(0xff))
	got := l.Marshal()
	want := []byte{
		0x09,
		0xfe, 0x78, 0x56, 0x34, 0x12,
		0x00,
		0xfd, 0xff, 0x00,
	}
	require.Equal(t, want, got)
}

func TestHeightListRoundTrip(t *testing.T) {
	l := NewHeightList(NewChainHeight(1), NewChainHeight(2), NewChainHeight(0xffff))
	encoded := l.Marshal()
	decoded, n, err := ParseHeightList(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Equal(t, l.Heights(), decoded.Heights())
}

func TestHeightListPush(t *testing.T) {
	l := NewHeightList(NewChainHeight(1))
	l.Push(NewChainHeight(2))
	require.Equal(t, []ChainHeight{NewChainHeight(1), NewChainHeight(2)}, l.Heights())
}

func TestHeightListEmpty(t *testing.T) {
	l := NewHeightList()
	encoded := l.Marshal()
	require.Equal(t, []byte{0x00}, encoded)
	decoded, _, err := ParseHeightList(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded.Heights())
}

func TestChainHeightOrdering(t *testing.T) {
	a := NewChainHeight(1)
	b := NewChainHeight(2)
	require.True(t, a.Before(b))
	require.False(t, b.Before(a))
	require.True(t, b.AtOrAfter(a))
	require.Equal(t, ChainHeight{}, ZeroChainHeight)
}

func TestChainHeightIncrementDecrement(t *testing.T) {
	h := NewChainHeight(5)
	require.Equal(t, uint64(6), h.Increment().AsUint64())
	require.Equal(t, uint64(4), h.Decrement().AsUint64())
}
