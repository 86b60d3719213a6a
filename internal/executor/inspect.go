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

// executeInspect walks a unit's full journal, re-reading the content live
// at each height it was touched. A height whose read comes back
// tombstoned yields an Inspection with a nil Content, preserving the fact
// that the unit was deleted at that point rather than hiding it.
func (e *Executor) executeInspect(cmd commands.InspectCommand) (commands.Outcome, error) {
	key := unitStoreKey(cmd.Specifier.Grouping, cmd.Specifier.Id)
	journalAnswer, err := e.core.Execute(instructions.GetJournalInstruction{Key: key})
	if err != nil {
		return nil, err
	}
	journalOk, isOk := journalAnswer.(instructions.GetJournalOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}

	heights := journalOk.Journal.UpdateHeights.Heights()
	inspections := make([]commands.Inspection, 0, len(heights))
	for _, height := range heights {
		h := height
		answer, err := e.core.Execute(instructions.GetOneInstruction{Key: key, Height: &h})
		if err != nil {
			return nil, err
		}
		ok, isOk := answer.(instructions.GetOneOkAnswer)
		if !isOk {
			return nil, ErrUnexpectedAnswer
		}
		var content *basics.UnitContent
		if !ok.Value.IsTombstone() && ok.Value.Data() != nil {
			parsed, _, err := basics.ParseUnitContent(ok.Value.Data())
			if err != nil {
				return nil, err
			}
			content = &parsed
		}
		inspections = append(inspections, commands.Inspection{Height: height, Content: content})
	}
	return commands.InspectOutcome{Inspections: inspections}, nil
}
