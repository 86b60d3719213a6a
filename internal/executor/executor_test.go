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

package executor

import (
	stderrors "errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/commands"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/kv"
	"github.com/immux/immuxdb/internal/vkv"
)

func newTestExecutor(t *testing.T) (*Executor, *vkv.Store) {
	t.Helper()
	v, err := vkv.NewStore(kv.NewMemStore(), 64, vkv.WithClock(func() int64 { return 1000 }))
	require.NoError(t, err)
	return NewExecutor(v), v
}

func grouping(name string) basics.GroupingLabel {
	return basics.NewGroupingLabel([]byte(name))
}

func idsOf(units []basics.Unit) []string {
	ids := make([]string, 0, len(units))
	for _, u := range units {
		ids = append(ids, u.Id.String())
	}
	sort.Strings(ids)
	return ids
}

func TestInsertThenSelectById(t *testing.T) {
	e, _ := newTestExecutor(t)
	books := grouping("books")

	_, err := e.Execute(commands.InsertCommand{
		Grouping: books,
		Targets: []commands.InsertTarget{
			{Id: basics.NewUnitId(1), Content: basics.JSONStringContent(`{"title":"Dune"}`)},
		},
	})
	require.NoError(t, err)

	outcome, err := e.Execute(commands.SelectCommand{Grouping: books, Condition: commands.SelectById{Id: basics.NewUnitId(1)}})
	require.NoError(t, err)
	sel, ok := outcome.(commands.SelectOutcome)
	require.True(t, ok)
	require.Len(t, sel.Units, 1)
	s, isStr := sel.Units[0].Content.AsString()
	require.True(t, isStr)
	require.Equal(t, `{"title":"Dune"}`, s)
}

func TestSelectByIdMissingReturnsErrCannotFindId(t *testing.T) {
	e, _ := newTestExecutor(t)
	_, err := e.Execute(commands.SelectCommand{Grouping: grouping("books"), Condition: commands.SelectById{Id: basics.NewUnitId(99)}})
	require.ErrorIs(t, err, ErrCannotFindId)
}

// TestSingleDocumentVersioning exercises the §8 scenario of the same name:
// updating a unit doesn't lose its history, Inspect sees every version, and
// a plain Select always reports the latest one.
func TestSingleDocumentVersioning(t *testing.T) {
	e, _ := newTestExecutor(t)
	books := grouping("books")
	id := basics.NewUnitId(1)

	_, err := e.Execute(commands.InsertCommand{Grouping: books, Targets: []commands.InsertTarget{
		{Id: id, Content: basics.JSONStringContent(`{"title":"Dune","edition":1}`)},
	}})
	require.NoError(t, err)
	_, err = e.Execute(commands.InsertCommand{Grouping: books, Targets: []commands.InsertTarget{
		{Id: id, Content: basics.JSONStringContent(`{"title":"Dune","edition":2}`)},
	}})
	require.NoError(t, err)

	selOutcome, err := e.Execute(commands.SelectCommand{Grouping: books, Condition: commands.SelectById{Id: id}})
	require.NoError(t, err)
	latest, _ := selOutcome.(commands.SelectOutcome).Units[0].Content.AsString()
	require.Equal(t, `{"title":"Dune","edition":2}`, latest)

	inspectOutcome, err := e.Execute(commands.InspectCommand{Specifier: basics.NewUnitSpecifier(books, id)})
	require.NoError(t, err)
	insp, ok := inspectOutcome.(commands.InspectOutcome)
	require.True(t, ok)
	require.Len(t, insp.Inspections, 2)
	first, _ := insp.Inspections[0].Content.AsString()
	second, _ := insp.Inspections[1].Content.AsString()
	require.Equal(t, `{"title":"Dune","edition":1}`, first)
	require.Equal(t, `{"title":"Dune","edition":2}`, second)
}

// TestChainIsolation exercises the §8 scenario: data written under one
// chain is invisible from another, and PickChain/NameChain round-trip.
func TestChainIsolation(t *testing.T) {
	engine := kv.NewMemStore()
	require.NoError(t, engine.CreateNamespace(kv.Namespace("chain-a")))
	require.NoError(t, engine.CreateNamespace(kv.Namespace("chain-b")))
	v, err := vkv.NewStore(engine, 64, vkv.WithClock(func() int64 { return 1000 }))
	require.NoError(t, err)
	e := NewExecutor(v)

	outcome, err := e.Execute(commands.PickChainCommand{NewChainName: basics.NewChainName("chain-a")})
	require.NoError(t, err)
	require.Equal(t, "chain-a", outcome.(commands.PickChainOutcome).NewChainName.String())

	_, err = e.Execute(commands.InsertCommand{Grouping: grouping("books"), Targets: []commands.InsertTarget{
		{Id: basics.NewUnitId(1), Content: basics.JSONStringContent(`{"title":"Dune"}`)},
	}})
	require.NoError(t, err)

	_, err = e.Execute(commands.PickChainCommand{NewChainName: basics.NewChainName("chain-b")})
	require.NoError(t, err)

	nameOutcome, err := e.Execute(commands.NameChainCommand{})
	require.NoError(t, err)
	require.Equal(t, "chain-b", nameOutcome.(commands.NameChainOutcome).ChainName.String())

	_, err = e.Execute(commands.SelectCommand{Grouping: grouping("books"), Condition: commands.SelectById{Id: basics.NewUnitId(1)}})
	require.ErrorIs(t, err, ErrCannotFindId)

	_, err = e.Execute(commands.PickChainCommand{NewChainName: basics.NewChainName("chain-a")})
	require.NoError(t, err)
	selOutcome, err := e.Execute(commands.SelectCommand{Grouping: grouping("books"), Condition: commands.SelectById{Id: basics.NewUnitId(1)}})
	require.NoError(t, err)
	require.Len(t, selOutcome.(commands.SelectOutcome).Units, 1)
}

// TestSelectByNamePropertyIndexEquivalence checks that an indexed and a
// scanned NameProperty select agree on the matching set, per the §8
// "index equivalence" scenario.
func TestSelectByNamePropertyIndexEquivalence(t *testing.T) {
	e, _ := newTestExecutor(t)
	people := grouping("people")

	docs := map[uint64]string{
		1: `{"role":"admin"}`,
		2: `{"role":"user"}`,
		3: `{"role":"admin"}`,
	}
	for id, content := range docs {
		_, err := e.Execute(commands.InsertCommand{Grouping: people, Targets: []commands.InsertTarget{
			{Id: basics.NewUnitId(id), Content: basics.JSONStringContent(content)},
		}})
		require.NoError(t, err)
	}

	scanOutcome, err := e.Execute(commands.SelectCommand{
		Grouping:  people,
		Condition: commands.SelectByNameProperty{Name: basics.NewPropertyName("role"), Property: basics.StringContent("admin")},
	})
	require.NoError(t, err)
	scanned := idsOf(scanOutcome.(commands.SelectOutcome).Units)
	require.Equal(t, []string{"1", "3"}, scanned)

	_, err = e.Execute(commands.CreateIndexCommand{Grouping: people, Name: basics.NewPropertyName("role")})
	require.NoError(t, err)

	indexedOutcome, err := e.Execute(commands.SelectCommand{
		Grouping:  people,
		Condition: commands.SelectByNameProperty{Name: basics.NewPropertyName("role"), Property: basics.StringContent("admin")},
	})
	require.NoError(t, err)
	indexed := idsOf(indexedOutcome.(commands.SelectOutcome).Units)
	require.Equal(t, scanned, indexed)
}

// TestRevertManyRepairsIndex exercises the §8 "RevertMany index repair"
// scenario: CreateIndex only backfills from current content, so reverting a
// unit to a height predating the index would leave no bucket for that old
// value unless RevertMany recomputes and writes it.
func TestRevertManyRepairsIndex(t *testing.T) {
	e, v := newTestExecutor(t)
	people := grouping("people")
	id := basics.NewUnitId(1)

	_, err := e.Execute(commands.InsertCommand{Grouping: people, Targets: []commands.InsertTarget{
		{Id: id, Content: basics.JSONStringContent(`{"role":"admin"}`)},
	}})
	require.NoError(t, err)
	heightAsAdmin := v.GetCurrentHeight()

	_, err = e.Execute(commands.InsertCommand{Grouping: people, Targets: []commands.InsertTarget{
		{Id: id, Content: basics.JSONStringContent(`{"role":"user"}`)},
	}})
	require.NoError(t, err)

	_, err = e.Execute(commands.CreateIndexCommand{Grouping: people, Name: basics.NewPropertyName("role")})
	require.NoError(t, err)

	beforeRevert, err := e.Execute(commands.SelectCommand{
		Grouping:  people,
		Condition: commands.SelectByNameProperty{Name: basics.NewPropertyName("role"), Property: basics.StringContent("admin")},
	})
	require.NoError(t, err)
	require.Empty(t, beforeRevert.(commands.SelectOutcome).Units)

	_, err = e.Execute(commands.RevertManyCommand{Specs: []commands.RevertTargetSpec{
		{Specifier: basics.NewUnitSpecifier(people, id), TargetHeight: heightAsAdmin},
	}})
	require.NoError(t, err)

	afterRevert, err := e.Execute(commands.SelectCommand{
		Grouping:  people,
		Condition: commands.SelectByNameProperty{Name: basics.NewPropertyName("role"), Property: basics.StringContent("admin")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, idsOf(afterRevert.(commands.SelectOutcome).Units))
}

func TestRevertAllDoesNotTouchIndex(t *testing.T) {
	e, v := newTestExecutor(t)
	people := grouping("people")
	id := basics.NewUnitId(1)

	_, err := e.Execute(commands.InsertCommand{Grouping: people, Targets: []commands.InsertTarget{
		{Id: id, Content: basics.JSONStringContent(`{"role":"admin"}`)},
	}})
	require.NoError(t, err)
	heightBeforeIndex := v.GetCurrentHeight()

	_, err = e.Execute(commands.CreateIndexCommand{Grouping: people, Name: basics.NewPropertyName("role")})
	require.NoError(t, err)

	_, err = e.Execute(commands.InsertCommand{Grouping: people, Targets: []commands.InsertTarget{
		{Id: id, Content: basics.JSONStringContent(`{"role":"user"}`)},
	}})
	require.NoError(t, err)

	_, err = e.Execute(commands.RevertAllCommand{TargetHeight: heightBeforeIndex})
	require.NoError(t, err)

	scanOutcome, err := e.Execute(commands.SelectCommand{Grouping: people, Condition: commands.UnconditionalMatch{}})
	require.NoError(t, err)
	latest, _ := scanOutcome.(commands.SelectOutcome).Units[0].Content.AsString()
	require.Equal(t, `{"role":"admin"}`, latest)

	// The "user" bucket was written before the revert and RevertAll never
	// touches it, so the indexed lookup still reports the unit under its
	// pre-revert value even though Select now returns "admin" content for
	// it — exactly the staleness Open Question Resolution 2 accepts and
	// names CreateIndex as the repair path for.
	staleOutcome, err := e.Execute(commands.SelectCommand{
		Grouping:  people,
		Condition: commands.SelectByNameProperty{Name: basics.NewPropertyName("role"), Property: basics.StringContent("user")},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, idsOf(staleOutcome.(commands.SelectOutcome).Units))
}

func TestExecuteRejectsUnrecognizedCommand(t *testing.T) {
	e := NewExecutor(fixtureCore{respond: func(instructions.Instruction) (instructions.Answer, error) {
		t.Fatal("core should never be consulted for an unrecognized command")
		return nil, nil
	}})
	_, err := e.Execute(nil)
	require.ErrorIs(t, err, ErrUnrecognizedCommand)
}

func TestInsertPropagatesCoreError(t *testing.T) {
	boom := stderrors.New("boom")
	e := NewExecutor(fixtureCore{respond: func(instructions.Instruction) (instructions.Answer, error) {
		return nil, boom
	}})
	_, err := e.Execute(commands.InsertCommand{Grouping: grouping("books"), Targets: []commands.InsertTarget{
		{Id: basics.NewUnitId(1), Content: basics.StringContent("x")},
	}})
	require.ErrorIs(t, err, boom)
}
