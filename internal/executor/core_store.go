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

// Package executor translates the typed Command/Outcome API
// (internal/commands) into the Instruction/Answer vocabulary the VKV/TKV
// layers understand, and back. Insert and CreateIndex additionally
// maintain an in-memory reverse index over indexed JSON properties,
// persisted as ordinary instructions through the same CoreStore.
package executor

import "github.com/immux/immuxdb/internal/instructions"

// CoreStore is the narrow surface the executor needs from whatever sits
// underneath it — a plain VKV store, or a TKV store wrapping a single
// transaction. Programming against this instead of a concrete *vkv.Store
// or *tkv.Store keeps the executor oblivious to whether its instructions
// are running inside a transaction.
type CoreStore interface {
	Execute(instructions.Instruction) (instructions.Answer, error)
}
