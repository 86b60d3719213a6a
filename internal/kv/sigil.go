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

package kv

// Sigil is the one-byte discriminant prefixed onto every key this engine
// ever writes, partitioning a single flat keyspace into the logical
// keyspaces the higher layers need (chain metadata, unit journals,
// instruction log, reverse index, ...). A single physical store can then
// serve every layer without needing per-layer tables.
type Sigil byte

const (
	SigilChainInfo                 Sigil = 0x10
	SigilChainHeight               Sigil = 0x11
	SigilGroupingInfo              Sigil = 0x20
	SigilGroupingIndexedNames      Sigil = 0x21
	SigilUnitJournal                Sigil = 0x30
	SigilHeightToInstructionRecord Sigil = 0x31
	SigilReverseIndexIdList        Sigil = 0xA0
)

func (s Sigil) String() string {
	switch s {
	case SigilChainInfo:
		return "ChainInfo"
	case SigilChainHeight:
		return "ChainHeight"
	case SigilGroupingInfo:
		return "GroupingInfo"
	case SigilGroupingIndexedNames:
		return "GroupingIndexedNames"
	case SigilUnitJournal:
		return "UnitJournal"
	case SigilHeightToInstructionRecord:
		return "HeightToInstructionRecord"
	case SigilReverseIndexIdList:
		return "ReverseIndexIdList"
	default:
		return "Unknown"
	}
}

// Prefix returns the single-byte key prefix for this sigil.
func (s Sigil) Prefix() []byte {
	return []byte{byte(s)}
}

// PrefixKey returns the sigil's prefix followed by rest, the standard way
// a higher layer builds a physical key.
func (s Sigil) PrefixKey(rest []byte) []byte {
	buf := make([]byte, 1+len(rest))
	buf[0] = byte(s)
	copy(buf[1:], rest)
	return buf
}
