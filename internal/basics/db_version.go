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

import "strconv"

// DBVersion stamps every instruction record with the binary version that
// produced it, so an operator inspecting an instruction log after an
// upgrade can tell which entries predate a wire-format change. Supplemented
// from the source engine's version-stamping behavior (SPEC_FULL §12).
type DBVersion struct {
	Major uint16
	Minor uint16
	Patch uint16
}

// CurrentDBVersion is the version stamped onto instruction records produced
// by this build.
var CurrentDBVersion = DBVersion{Major: 0, Minor: 1, Patch: 0}

func (v DBVersion) String() string {
	return strconv.Itoa(int(v.Major)) + "." + strconv.Itoa(int(v.Minor)) + "." + strconv.Itoa(int(v.Patch))
}

// Marshal encodes the version as three little-endian uint16 fields.
func (v DBVersion) Marshal() []byte {
	buf := make([]byte, 6)
	buf[0], buf[1] = byte(v.Major), byte(v.Major>>8)
	buf[2], buf[3] = byte(v.Minor), byte(v.Minor>>8)
	buf[4], buf[5] = byte(v.Patch), byte(v.Patch>>8)
	return buf
}

// ParseDBVersion reads a DBVersion from its 6-byte encoding.
func ParseDBVersion(data []byte) (DBVersion, error) {
	if len(data) < 6 {
		return DBVersion{}, ErrUnitContentMalformed
	}
	return DBVersion{
		Major: uint16(data[0]) | uint16(data[1])<<8,
		Minor: uint16(data[2]) | uint16(data[3])<<8,
		Patch: uint16(data[4]) | uint16(data[5])<<8,
	}, nil
}
