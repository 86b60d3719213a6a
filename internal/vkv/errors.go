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

package vkv

import "github.com/pkg/errors"

// MaxRecursion bounds get_value_after_height_recurse/revert chains so a
// cyclic or corrupted instruction log can never hang a read.
const MaxRecursion = 128

var (
	ErrMissingJournal           = errors.New("vkv: no journal exists for key")
	ErrCannotFindSuitableVersion = errors.New("vkv: no value exists at or before the requested height")
	ErrTryingToRevertToFuture   = errors.New("vkv: cannot revert to a height at or after the current one")
	ErrTooManyRecursion         = errors.New("vkv: exceeded maximum revert-chain recursion depth")
	ErrUnexpectedInstruction    = errors.New("vkv: instruction log entry was not a data write instruction")
	ErrSaveInstructionFailed    = errors.New("vkv: failed to persist instruction record")
)

// MissingJournalError wraps ErrMissingJournal with the key that was
// missing, for callers that want to report it.
type MissingJournalError struct {
	Key []byte
}

func (e *MissingJournalError) Error() string {
	return ErrMissingJournal.Error()
}

func (e *MissingJournalError) Unwrap() error {
	return ErrMissingJournal
}
