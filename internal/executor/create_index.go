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
	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/commands"
	"github.com/immux/immuxdb/internal/instructions"
)

// executeCreateIndex registers cmd.Name as indexed for cmd.Grouping, then
// backfills the reverse index from every unit already there. Backfilling
// scans the whole grouping regardless of what was indexed before, since a
// brand-new property has no existing bucket to merge against; a unit whose
// content isn't JSON, or doesn't parse as a JSON object, is silently
// skipped rather than treated as an error.
func (e *Executor) executeCreateIndex(cmd commands.CreateIndexCommand) (commands.Outcome, error) {
	names, err := getIndexedNamesListWithFallback(e.core, cmd.Grouping)
	if err != nil {
		return nil, err
	}
	names = names.Append(cmd.Name)
	if err := setIndexedNamesList(e.core, cmd.Grouping, names); err != nil {
		return nil, err
	}

	all, err := getAllInGrouping(e.core, cmd.Grouping)
	if err != nil {
		return nil, err
	}

	idx := newReverseIndex()
	for _, u := range all {
		if u.Content.Kind() != basics.ContentKindJSONString {
			continue
		}
		s, _ := u.Content.AsString()
		doc, ok := decodeJSONObject(s)
		if !ok {
			continue
		}
		if err := idx.indexNewJSON(u.Id, doc, cmd.Name); err != nil {
			continue
		}
	}

	targets := make([]instructions.SetTarget, 0, len(idx.entries))
	for _, entry := range idx.all() {
		key := reverseIndexBucketKey(cmd.Grouping, entry.name, entry.property)
		targets = append(targets, instructions.SetTarget{Key: key, Value: basics.ExtantValue(entry.ids.Marshal())})
	}
	if len(targets) > 0 {
		if _, err := e.core.Execute(instructions.SetManyInstruction{Targets: targets}); err != nil {
			return nil, err
		}
	}
	return commands.CreateIndexOutcome{}, nil
}
