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

import "github.com/pkg/errors"

var (
	// ErrUnexpectedAnswer is returned when the core answers an instruction
	// with a type the issuing executor function didn't ask for, which
	// should never happen given how each instruction is built.
	ErrUnexpectedAnswer = errors.New("executor: core returned an answer of the wrong shape")

	// ErrCannotFindId is returned by Select(Id) when no unit with that id
	// exists in the grouping.
	ErrCannotFindId = errors.New("executor: no unit with that id exists")

	// ErrUnimplementedSelectCondition is returned for SelectByJSCode, which
	// the source engine never implemented either.
	ErrUnimplementedSelectCondition = errors.New("executor: this select condition is not implemented")

	// ErrUnimplementedIndexingPropertyType is returned when a JSON
	// property's value isn't one of the indexable scalar kinds
	// (string, bool, number, null).
	ErrUnimplementedIndexingPropertyType = errors.New("executor: property value is not an indexable JSON scalar")

	// ErrUnrecognizedCommand is returned for a Command variant outside the
	// closed set Execute knows how to route.
	ErrUnrecognizedCommand = errors.New("executor: unrecognized command")
)
