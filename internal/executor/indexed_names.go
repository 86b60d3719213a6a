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
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/vkv"
)

// getIndexedNamesListWithFallback reports which property names are
// currently indexed for grouping, treating "no list has ever been written"
// as an empty list rather than an error — a grouping with no indexes yet
// is the common case, not a fault.
func getIndexedNamesListWithFallback(core CoreStore, grouping basics.GroupingLabel) (basics.PropertyNameList, error) {
	key := indexedNamesListKey(grouping)
	answer, err := core.Execute(instructions.GetOneInstruction{Key: key})
	if err != nil {
		if stderrors.As(err, new(*vkv.MissingJournalError)) {
			return basics.NewPropertyNameList(), nil
		}
		return basics.PropertyNameList{}, err
	}
	ok, isOk := answer.(instructions.GetOneOkAnswer)
	if !isOk {
		return basics.PropertyNameList{}, ErrUnexpectedAnswer
	}
	if ok.Value.IsTombstone() || ok.Value.Data() == nil {
		return basics.NewPropertyNameList(), nil
	}
	list, _, err := basics.ParsePropertyNameList(ok.Value.Data())
	if err != nil {
		return basics.PropertyNameList{}, err
	}
	return list, nil
}

// setIndexedNamesList persists grouping's indexed-names list as a single
// SetMany write.
func setIndexedNamesList(core CoreStore, grouping basics.GroupingLabel, list basics.PropertyNameList) error {
	key := indexedNamesListKey(grouping)
	_, err := core.Execute(instructions.SetManyInstruction{Targets: []instructions.SetTarget{
		{Key: key, Value: basics.ExtantValue(list.Marshal())},
	}})
	return err
}
