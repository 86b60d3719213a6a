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

package kv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemStoreGetSet(t *testing.T) {
	s := NewMemStore()
	_, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set([]byte("k"), []byte("v")))
	v, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []byte("v"), v)
}

func TestMemStoreFilterPrefixOrder(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Set([]byte("a/2"), []byte("2")))
	require.NoError(t, s.Set([]byte("a/1"), []byte("1")))
	require.NoError(t, s.Set([]byte("b/1"), []byte("b")))

	results, err := s.FilterPrefix([]byte("a/"))
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.Equal(t, []byte("a/1"), results[0].Key)
	require.Equal(t, []byte("a/2"), results[1].Key)
}

func TestMemStoreAtomicBatchSet(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.AtomicBatchSet([]KVPair{
		{Key: []byte("x"), Value: []byte("1")},
		{Key: []byte("y"), Value: []byte("2")},
	}))
	v, ok, _ := s.Get([]byte("x"))
	require.True(t, ok)
	require.Equal(t, []byte("1"), v)
}

func TestMemStoreNamespaceIsolation(t *testing.T) {
	s := NewMemStore()
	require.NoError(t, s.Set([]byte("k"), []byte("default-value")))

	require.NoError(t, s.CreateNamespace("other"))
	require.NoError(t, s.SwitchNamespace("other"))
	_, ok, err := s.Get([]byte("k"))
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.Set([]byte("k"), []byte("other-value")))
	v, ok, _ := s.Get([]byte("k"))
	require.True(t, ok)
	require.Equal(t, []byte("other-value"), v)

	require.NoError(t, s.SwitchNamespace(DefaultNamespace))
	v, ok, _ = s.Get([]byte("k"))
	require.True(t, ok)
	require.Equal(t, []byte("default-value"), v)
}

func TestMemStoreSwitchUnknownNamespace(t *testing.T) {
	s := NewMemStore()
	require.ErrorIs(t, s.SwitchNamespace("nope"), ErrNamespaceNotFound)
}
