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

package tkv

import "github.com/pkg/errors"

var (
	// ErrTransactionInProgress is returned when a plain (non-transactional)
	// data instruction arrives while a transaction occupies the queue.
	ErrTransactionInProgress = errors.New("tkv: a transaction is already in progress")

	// ErrTransactionNotStarted is returned when a commit, abort, or
	// transactional data instruction names a transaction id that is not
	// the queue's current front.
	ErrTransactionNotStarted = errors.New("tkv: no transaction with that id is active")

	// ErrUnexpectedAnswer is returned when the underlying VKV store answers
	// a transactional data instruction with something other than a plain
	// data answer, which should never happen given Execute's own dispatch.
	ErrUnexpectedAnswer = errors.New("tkv: vkv returned an answer of the wrong shape")

	// ErrCannotSwitchNamespaceWhileTransactionIsOngoing guards chain
	// switches from racing an in-flight transaction's writes.
	ErrCannotSwitchNamespaceWhileTransactionIsOngoing = errors.New("tkv: cannot switch namespace while a transaction is ongoing")

	// ErrUnrecognizedInstruction is returned for an Instruction variant
	// outside the closed set Execute knows how to route.
	ErrUnrecognizedInstruction = errors.New("tkv: unrecognized instruction")
)
