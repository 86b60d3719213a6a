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

// UnitJournal is the VKV record kept for every key that has ever been
// written: its current value and the full list of heights at which it was
// touched. Point-in-time reads replay update_heights backwards from the
// requested height to find the value that was live at that point.
type UnitJournal struct {
	Value         StoreValue
	UpdateHeights HeightList
}

// Marshal encodes the journal as its value followed by its height list.
func (j UnitJournal) Marshal() []byte {
	buf := j.Value.Marshal()
	return append(buf, j.UpdateHeights.Marshal()...)
}

// ParseUnitJournal reads a UnitJournal from its encoded form.
func ParseUnitJournal(data []byte) (UnitJournal, error) {
	value, n, err := ParseStoreValue(data)
	if err != nil {
		return UnitJournal{}, err
	}
	heights, _, err := ParseHeightList(data[n:])
	if err != nil {
		return UnitJournal{}, err
	}
	return UnitJournal{Value: value, UpdateHeights: heights}, nil
}
