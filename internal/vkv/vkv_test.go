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

package vkv

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/kv"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(kv.NewMemStore(), 64, WithClock(func() int64 { return 1000 }))
	require.NoError(t, err)
	return s
}

func testKey(name string, id uint64) basics.StoreKey {
	return basics.NewStoreKey(basics.NewUnitSpecifier(basics.NewGroupingLabel([]byte(name)), basics.NewUnitId(id)))
}

func TestSetManyThenGetOneLatest(t *testing.T) {
	s := newTestStore(t)
	key := testKey("books", 1)

	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("v1"))},
	}})
	require.NoError(t, err)

	ans, err := s.Execute(instructions.GetOneInstruction{Key: key})
	require.NoError(t, err)
	ok, isOk := ans.(instructions.GetOneOkAnswer)
	require.True(t, isOk)
	require.Equal(t, []byte("v1"), ok.Value.Data())
}

func TestVersionedReadAtPastHeight(t *testing.T) {
	s := newTestStore(t)
	key := testKey("books", 1)

	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("v1"))},
	}})
	require.NoError(t, err)
	heightAfterV1 := s.GetCurrentHeight()

	_, err = s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("v2"))},
	}})
	require.NoError(t, err)

	ans, err := s.Execute(instructions.GetOneInstruction{Key: key, Height: &heightAfterV1})
	require.NoError(t, err)
	ok := ans.(instructions.GetOneOkAnswer)
	require.Equal(t, []byte("v1"), ok.Value.Data())

	ans2, err := s.Execute(instructions.GetOneInstruction{Key: key})
	require.NoError(t, err)
	ok2 := ans2.(instructions.GetOneOkAnswer)
	require.Equal(t, []byte("v2"), ok2.Value.Data())
}

func TestRevertManyRestoresPastValue(t *testing.T) {
	s := newTestStore(t)
	key := testKey("books", 1)

	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("v1"))},
	}})
	require.NoError(t, err)
	heightAfterV1 := s.GetCurrentHeight()

	_, err = s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("v2"))},
	}})
	require.NoError(t, err)

	_, err = s.Execute(instructions.RevertManyInstruction{Targets: []instructions.RevertTarget{
		{Key: key, Height: heightAfterV1},
	}})
	require.NoError(t, err)

	ans, err := s.Execute(instructions.GetOneInstruction{Key: key})
	require.NoError(t, err)
	ok := ans.(instructions.GetOneOkAnswer)
	require.Equal(t, []byte("v1"), ok.Value.Data())
}

func TestRevertAllAcrossMultipleKeys(t *testing.T) {
	s := newTestStore(t)
	keyA := testKey("books", 1)
	keyB := testKey("books", 2)

	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: keyA, Value: basics.ExtantValue([]byte("a1"))},
		{Key: keyB, Value: basics.ExtantValue([]byte("b1"))},
	}})
	require.NoError(t, err)
	baseline := s.GetCurrentHeight()

	_, err = s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: keyA, Value: basics.ExtantValue([]byte("a2"))},
	}})
	require.NoError(t, err)
	_, err = s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: keyB, Value: basics.ExtantValue([]byte("b2"))},
	}})
	require.NoError(t, err)

	ans, err := s.Execute(instructions.RevertAllInstruction{TargetHeight: baseline})
	require.NoError(t, err)
	result := ans.(instructions.RevertAllOkAnswer)
	require.Len(t, result.RevertedKeys, 2)

	gotA, _ := s.Execute(instructions.GetOneInstruction{Key: keyA})
	require.Equal(t, []byte("a1"), gotA.(instructions.GetOneOkAnswer).Value.Data())
	gotB, _ := s.Execute(instructions.GetOneInstruction{Key: keyB})
	require.Equal(t, []byte("b1"), gotB.(instructions.GetOneOkAnswer).Value.Data())
}

func TestRevertToFutureRejected(t *testing.T) {
	s := newTestStore(t)
	key := testKey("books", 1)
	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("v1"))},
	}})
	require.NoError(t, err)

	future := s.GetCurrentHeight().Increment()
	_, err = s.Execute(instructions.RevertManyInstruction{Targets: []instructions.RevertTarget{
		{Key: key, Height: future},
	}})
	require.ErrorIs(t, err, ErrTryingToRevertToFuture)
}

func TestGetOneMissingJournal(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Execute(instructions.GetOneInstruction{Key: testKey("books", 99)})
	require.Error(t, err)
	var missing *MissingJournalError
	require.ErrorAs(t, err, &missing)
}

func TestGetManyByPrefixSkipsTombstones(t *testing.T) {
	s := newTestStore(t)
	keyA := testKey("books", 1)
	keyB := testKey("books", 2)

	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: keyA, Value: basics.ExtantValue([]byte("a1"))},
		{Key: keyB, Value: basics.ExtantValue([]byte("b1"))},
	}})
	require.NoError(t, err)

	_, err = s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: keyB, Value: basics.TombstoneValue()},
	}})
	require.NoError(t, err)

	prefix := basics.GroupingPrefix(basics.NewGroupingLabel([]byte("books")))
	ans, err := s.Execute(instructions.GetManyInstruction{Targets: instructions.GetManyTargets{Prefix: prefix, HasPrefix: true}})
	require.NoError(t, err)
	data := ans.(instructions.GetManyOkAnswer).Data
	require.Len(t, data, 1)
	require.Equal(t, []byte("a1"), data[0].Value.Data())
}

func TestNamespaceSwitchIsolatesChains(t *testing.T) {
	s := newTestStore(t)
	key := testKey("books", 1)
	_, err := s.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue([]byte("default-chain"))},
	}})
	require.NoError(t, err)

	err = s.engine.CreateNamespace("chain-b")
	require.NoError(t, err)

	_, err = s.Execute(instructions.SwitchNamespaceInstruction{NewNamespace: "chain-b"})
	require.NoError(t, err)

	_, err = s.Execute(instructions.GetOneInstruction{Key: key})
	require.Error(t, err)
}
