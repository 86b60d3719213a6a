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

import "github.com/immux/immuxdb/internal/instructions"

// fixtureCore is a CoreStore whose response to every instruction is
// supplied by a closure, for exercising an executor function's own error
// handling without a real VKV/TKV store underneath it.
type fixtureCore struct {
	respond func(instructions.Instruction) (instructions.Answer, error)
}

func (f fixtureCore) Execute(instr instructions.Instruction) (instructions.Answer, error) {
	return f.respond(instr)
}
