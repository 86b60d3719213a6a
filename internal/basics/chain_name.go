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

package basics

import "fmt"

// DefaultChainName is used when a client never calls PickChain.
const DefaultChainName = "default"

// MaxChainNameLength bounds a chain name's length in bytes, mirroring the
// source engine's MAX_CHAIN_NAME_LENGTH (SPEC_FULL §12).
const MaxChainNameLength = 128

// ErrChainNameTooLong is returned by ValidateChainName for a name longer
// than MaxChainNameLength bytes.
var ErrChainNameTooLong = fmt.Errorf("chain name exceeds %d bytes", MaxChainNameLength)

// ValidateChainName rejects a chain name longer than MaxChainNameLength.
// Callers that accept a chain name from configuration or the CLI run it
// through here before handing it to NewChainName; PickChain/NameChain's own
// round trip through an already-stored namespace never needs to.
func ValidateChainName(name string) error {
	if len(name) > MaxChainNameLength {
		return ErrChainNameTooLong
	}
	return nil
}

// ChainName identifies one of the independent, isolated keyspaces a store
// can hold. Supplemented from the source engine's chain-switching feature
// (SPEC_FULL §12): every KV namespace is addressed by name, not index, so
// operators can script chain creation without tracking numeric handles.
type ChainName struct {
	name string
}

// NewChainName wraps a plain string as a ChainName, falling back to
// DefaultChainName for the empty string.
func NewChainName(name string) ChainName {
	if name == "" {
		name = DefaultChainName
	}
	return ChainName{name: name}
}

func (c ChainName) String() string {
	return c.name
}

// Equal reports whether two chain names are the same.
func (c ChainName) Equal(other ChainName) bool {
	return c.name == other.name
}
