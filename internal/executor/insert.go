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

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/commands"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/vkv"
)

// getUpdatesForIndex computes the reverse-index SetTargets that writing
// units would require, merging against whatever each affected bucket
// already holds. Shared by Insert and RevertMany, which both need to keep
// the index in step with a unit's new (or restored) content.
func getUpdatesForIndex(core CoreStore, grouping basics.GroupingLabel, units []basics.Unit) ([]instructions.SetTarget, error) {
	names, err := getIndexedNamesListWithFallback(core, grouping)
	if err != nil {
		return nil, err
	}

	idx := newReverseIndex()
	for _, u := range units {
		if u.Content.Kind() != basics.ContentKindJSONString {
			continue
		}
		s, _ := u.Content.AsString()
		doc, ok := decodeJSONObject(s)
		if !ok {
			continue
		}
		for _, name := range names.Names() {
			if err := idx.indexNewJSON(u.Id, doc, name); err != nil {
				return nil, err
			}
		}
	}

	targets := make([]instructions.SetTarget, 0, len(idx.entries))
	for _, entry := range idx.all() {
		key := reverseIndexBucketKey(grouping, entry.name, entry.property)
		merged, err := mergeExistingIdList(core, key, entry.ids)
		if err != nil {
			return nil, err
		}
		targets = append(targets, instructions.SetTarget{Key: key, Value: basics.ExtantValue(merged.Marshal())})
	}
	return targets, nil
}

// mergeExistingIdList reads whatever id list already lives at key and
// unions it with newIds, so indexing a second unit under the same property
// value doesn't clobber the first.
func mergeExistingIdList(core CoreStore, key basics.StoreKey, newIds basics.IdList) (basics.IdList, error) {
	answer, err := core.Execute(instructions.GetOneInstruction{Key: key})
	if err != nil {
		if stderrors.As(err, new(*vkv.MissingJournalError)) {
			return newIds, nil
		}
		return basics.IdList{}, err
	}
	ok, isOk := answer.(instructions.GetOneOkAnswer)
	if !isOk {
		return basics.IdList{}, ErrUnexpectedAnswer
	}
	if ok.Value.IsTombstone() || ok.Value.Data() == nil {
		return newIds, nil
	}
	existing, err := basics.ParseIdList(ok.Value.Data())
	if err != nil {
		return basics.IdList{}, err
	}
	return existing.Merge(newIds), nil
}

// executeInsert writes every target's content and, for JSON content,
// indexes it against the grouping's currently-indexed properties. Both the
// unit writes and the index updates go out as one atomic SetMany, so a
// crash can never leave a unit written without its index entries or vice
// versa.
func (e *Executor) executeInsert(cmd commands.InsertCommand) (commands.Outcome, error) {
	units := make([]basics.Unit, 0, len(cmd.Targets))
	for _, t := range cmd.Targets {
		units = append(units, basics.NewUnit(t.Id, t.Content))
	}

	indexUpdates, err := getUpdatesForIndex(e.core, cmd.Grouping, units)
	if err != nil {
		return nil, err
	}

	targets := make([]instructions.SetTarget, 0, len(cmd.Targets)+len(indexUpdates))
	for _, t := range cmd.Targets {
		targets = append(targets, instructions.SetTarget{
			Key:   unitStoreKey(cmd.Grouping, t.Id),
			Value: basics.ExtantValue(t.Content.Marshal()),
		})
	}
	targets = append(targets, indexUpdates...)

	answer, err := e.core.Execute(instructions.SetManyInstruction{Targets: targets})
	if err != nil {
		return nil, err
	}
	ok, isOk := answer.(instructions.SetOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}
	return commands.InsertOutcome{Count: ok.Count}, nil
}
