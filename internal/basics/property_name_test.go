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

func TestPropertyNameRoundTrip(t *testing.T) {
	p := NewPropertyName("age")
	encoded := p.Marshal()
	decoded, n, err := ParsePropertyName(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.True(t, p.Equal(decoded))
}

func TestPropertyNameListRoundTrip(t *testing.T) {
	l := NewPropertyNameList(NewPropertyName("age"), NewPropertyName("name"))
	encoded := l.Marshal()
	decoded, n, err := ParsePropertyNameList(encoded)
	require.NoError(t, err)
	require.Equal(t, len(encoded), n)
	require.Len(t, decoded.Names(), 2)
	require.True(t, decoded.Contains(NewPropertyName("age")))
	require.True(t, decoded.Contains(NewPropertyName("name")))
}

func TestPropertyNameListAppendDedup(t *testing.T) {
	l := NewPropertyNameList(NewPropertyName("age"))
	l2 := l.Append(NewPropertyName("age"))
	require.Len(t, l2.Names(), 1)

	l3 := l.Append(NewPropertyName("weight"))
	require.Len(t, l3.Names(), 2)
}

func TestPropertyNameListEmptyRoundTrip(t *testing.T) {
	l := NewPropertyNameList()
	encoded := l.Marshal()
	decoded, _, err := ParsePropertyNameList(encoded)
	require.NoError(t, err)
	require.Empty(t, decoded.Names())
}
