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

	json "github.com/goccy/go-json"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/commands"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/vkv"
)

// getAllInGrouping returns every live unit in grouping, by prefix-scanning
// the unit-journal keyspace. Tombstoned entries are never returned; VKV's
// GetMany-by-prefix already drops them.
func getAllInGrouping(core CoreStore, grouping basics.GroupingLabel) ([]basics.Unit, error) {
	answer, err := core.Execute(instructions.GetManyInstruction{
		Targets: instructions.GetManyTargets{HasPrefix: true, Prefix: basics.GroupingPrefix(grouping)},
	})
	if err != nil {
		return nil, err
	}
	ok, isOk := answer.(instructions.GetManyOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}

	units := make([]basics.Unit, 0, len(ok.Data))
	for _, pair := range ok.Data {
		if pair.Value.IsTombstone() {
			continue
		}
		spec, err := basics.ParseStoreKey(pair.Key.Bytes())
		if err != nil {
			return nil, err
		}
		content, _, err := basics.ParseUnitContent(pair.Value.Data())
		if err != nil {
			return nil, err
		}
		units = append(units, basics.NewUnit(spec.Id, content))
	}
	return units, nil
}

func selectById(core CoreStore, grouping basics.GroupingLabel, id basics.UnitId) ([]basics.Unit, error) {
	key := unitStoreKey(grouping, id)
	answer, err := core.Execute(instructions.GetOneInstruction{Key: key})
	if err != nil {
		if stderrors.As(err, new(*vkv.MissingJournalError)) {
			return nil, ErrCannotFindId
		}
		return nil, err
	}
	ok, isOk := answer.(instructions.GetOneOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}
	if ok.Value.IsTombstone() || ok.Value.Data() == nil {
		return nil, ErrCannotFindId
	}
	content, _, err := basics.ParseUnitContent(ok.Value.Data())
	if err != nil {
		return nil, err
	}
	return []basics.Unit{basics.NewUnit(id, content)}, nil
}

// selectByNameProperty answers a NameProperty select from the reverse
// index when one exists for name, falling back to a full grouping scan
// when it doesn't — an un-indexed property is still queryable, just
// slower.
func selectByNameProperty(core CoreStore, grouping basics.GroupingLabel, name basics.PropertyName, property basics.UnitContent) ([]basics.Unit, error) {
	key := reverseIndexBucketKey(grouping, name, property.Marshal())
	answer, err := core.Execute(instructions.GetOneInstruction{Key: key})
	if err != nil {
		if stderrors.As(err, new(*vkv.MissingJournalError)) {
			return selectByNamePropertyScan(core, grouping, name, property)
		}
		return nil, err
	}
	ok, isOk := answer.(instructions.GetOneOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}
	if ok.Value.IsTombstone() || ok.Value.Data() == nil {
		return selectByNamePropertyScan(core, grouping, name, property)
	}
	idList, err := basics.ParseIdList(ok.Value.Data())
	if err != nil {
		return nil, err
	}

	units := make([]basics.Unit, 0, idList.Len())
	for _, id := range idList.Ids() {
		unitKey := unitStoreKey(grouping, id)
		unitAnswer, err := core.Execute(instructions.GetOneInstruction{Key: unitKey})
		if err != nil {
			if stderrors.As(err, new(*vkv.MissingJournalError)) {
				continue
			}
			return nil, err
		}
		unitOk, isOk := unitAnswer.(instructions.GetOneOkAnswer)
		if !isOk {
			return nil, ErrUnexpectedAnswer
		}
		if unitOk.Value.IsTombstone() || unitOk.Value.Data() == nil {
			// Tombstoned since the index bucket was last written; skip
			// rather than fail, the bucket will catch up on next index
			// maintenance.
			continue
		}
		content, _, err := basics.ParseUnitContent(unitOk.Value.Data())
		if err != nil {
			return nil, err
		}
		units = append(units, basics.NewUnit(id, content))
	}
	return units, nil
}

func selectByNamePropertyScan(core CoreStore, grouping basics.GroupingLabel, name basics.PropertyName, property basics.UnitContent) ([]basics.Unit, error) {
	all, err := getAllInGrouping(core, grouping)
	if err != nil {
		return nil, err
	}
	matches := make([]basics.Unit, 0)
	for _, u := range all {
		if u.Content.Kind() != basics.ContentKindJSONString {
			continue
		}
		s, _ := u.Content.AsString()
		doc, ok := decodeJSONObject(s)
		if !ok {
			continue
		}
		field, present := doc[name.String()]
		if !present {
			continue
		}
		fieldBytes, err := json.Marshal(field)
		if err != nil {
			continue
		}
		if property.EqualJSONValue(fieldBytes) {
			matches = append(matches, u)
		}
	}
	return matches, nil
}

func (e *Executor) executeSelect(cmd commands.SelectCommand) (commands.Outcome, error) {
	var units []basics.Unit
	var err error

	switch cond := cmd.Condition.(type) {
	case commands.UnconditionalMatch:
		units, err = getAllInGrouping(e.core, cmd.Grouping)
	case commands.SelectById:
		units, err = selectById(e.core, cmd.Grouping, cond.Id)
	case commands.SelectByNameProperty:
		units, err = selectByNameProperty(e.core, cmd.Grouping, cond.Name, cond.Property)
	case commands.SelectByJSCode:
		return nil, ErrUnimplementedSelectCondition
	default:
		return nil, ErrUnrecognizedCommand
	}
	if err != nil {
		return nil, err
	}
	return commands.SelectOutcome{Units: units}, nil
}
