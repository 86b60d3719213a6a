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

package instructions

import (
	"github.com/immux/immuxdb/internal/basics"
)

// InstructionRecord is what actually gets persisted under
// HeightToInstructionRecord: the write instruction that produced a height,
// stamped with the build version and wall-clock time it ran at, plus (for
// RevertAll only) the set of keys it ended up touching. AffectedKeys is nil
// for every instruction except RevertAll, whose blast radius can't be
// known just from its target height.
type InstructionRecord struct {
	Instruction   DataWriteInstruction
	Version       basics.DBVersion
	TimestampUnix int64
	AffectedKeys  []basics.StoreKey
}

// NewInstructionRecord stamps instruction with the current build version
// and the given timestamp (passed in rather than read from the clock, so
// callers stay testable and deterministic).
func NewInstructionRecord(instruction DataWriteInstruction, timestampUnix int64) InstructionRecord {
	return InstructionRecord{
		Instruction:   instruction,
		Version:       basics.CurrentDBVersion,
		TimestampUnix: timestampUnix,
	}
}
