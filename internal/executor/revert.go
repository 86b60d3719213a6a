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

// executeRevertMany recomputes index deltas as though each target's
// content-at-target-height were being freshly inserted, submits those
// index updates, then issues the VKV-level revert. A target whose
// target-height read fails or comes back tombstoned contributes no index
// update and is simply skipped — it still takes part in the RevertMany
// instruction below, which is where any real fault surfaces.
func (e *Executor) executeRevertMany(cmd commands.RevertManyCommand) (commands.Outcome, error) {
	var indexUpdates []instructions.SetTarget
	for _, spec := range cmd.Specs {
		key := unitStoreKey(spec.Specifier.Grouping, spec.Specifier.Id)
		height := spec.TargetHeight
		answer, err := e.core.Execute(instructions.GetOneInstruction{Key: key, Height: &height})
		if err != nil {
			continue
		}
		ok, isOk := answer.(instructions.GetOneOkAnswer)
		if !isOk {
			continue
		}
		if ok.Value.IsTombstone() || ok.Value.Data() == nil {
			continue
		}
		content, _, err := basics.ParseUnitContent(ok.Value.Data())
		if err != nil {
			continue
		}
		unit := basics.NewUnit(spec.Specifier.Id, content)
		updates, err := getUpdatesForIndex(e.core, spec.Specifier.Grouping, []basics.Unit{unit})
		if err != nil {
			return nil, err
		}
		indexUpdates = append(indexUpdates, updates...)
	}

	if _, err := e.core.Execute(instructions.SetManyInstruction{Targets: indexUpdates}); err != nil {
		return nil, err
	}

	targets := make([]instructions.RevertTarget, 0, len(cmd.Specs))
	for _, spec := range cmd.Specs {
		targets = append(targets, instructions.RevertTarget{
			Key:    unitStoreKey(spec.Specifier.Grouping, spec.Specifier.Id),
			Height: spec.TargetHeight,
		})
	}
	answer, err := e.core.Execute(instructions.RevertManyInstruction{Targets: targets})
	if err != nil {
		return nil, err
	}
	if _, ok := answer.(instructions.RevertOkAnswer); !ok {
		return nil, ErrUnexpectedAnswer
	}
	return commands.RevertOutcome{}, nil
}

// executeRevertAll forwards straight to the VKV-level revert. It does not
// repair the reverse index — recomputing deltas for every key RevertAll
// might have touched, across every grouping, would mean an unbounded
// full-index rebuild on every call. Callers that rely on indexed queries
// after a RevertAll should re-run CreateIndex.
func (e *Executor) executeRevertAll(cmd commands.RevertAllCommand) (commands.Outcome, error) {
	answer, err := e.core.Execute(instructions.RevertAllInstruction{TargetHeight: cmd.TargetHeight})
	if err != nil {
		return nil, err
	}
	if _, ok := answer.(instructions.RevertAllOkAnswer); !ok {
		return nil, ErrUnexpectedAnswer
	}
	e.logger.Warn("revert-all does not repair the reverse index", "target_height", cmd.TargetHeight.AsUint64())
	return commands.RevertAllOutcome{}, nil
}
