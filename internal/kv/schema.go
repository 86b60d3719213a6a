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

// SigilCfgItem describes how a sigil's keyspace should be treated by a
// persistent engine: whether its keys share a common prefix length worth
// installing a prefix extractor for (Badger's bloom-filter-per-prefix
// optimization), and whether it is ever range-scanned at all.
type SigilCfgItem struct {
	// PrefixExtractorLen is the number of bytes after the sigil byte that
	// form the scan prefix for this keyspace (e.g. the grouping label's
	// length-prefixed encoding for UnitJournal keys). Zero means no fixed
	// prefix narrower than "the whole key" is meaningful.
	PrefixExtractorLen int
	// RangeScanned marks keyspaces the executor prefix-scans (GetAllInGrouping,
	// reverse-index lookups), which callers use to decide whether to
	// register a Badger prefix iterator option.
	RangeScanned bool
}

// SigilCfg mirrors the teacher's per-table configuration map idiom: one
// entry per logical keyspace, looked up by its Sigil rather than a table
// name string.
type SigilCfg map[Sigil]SigilCfgItem

// DefaultSigilCfg is the schema used by every store implementation in this
// package. Three keyspaces are marked RangeScanned: UnitJournal (scanned
// per grouping), HeightToInstructionRecord and ReverseIndexIdList.
var DefaultSigilCfg = SigilCfg{
	SigilChainInfo:                 {},
	SigilChainHeight:               {},
	SigilGroupingInfo:              {},
	SigilGroupingIndexedNames:      {},
	SigilUnitJournal:               {RangeScanned: true},
	SigilHeightToInstructionRecord: {RangeScanned: true},
	SigilReverseIndexIdList:        {RangeScanned: true},
}
