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

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUnitJournalMarshalExactBytes(t *testing.T) {
	j := UnitJournal{
		Value:         ExtantValue([]byte{1, 2, 3}),
		UpdateHeights: NewHeightList(NewChainHeight(0), NewChainHeight(0xf0), NewChainHeight(0xff00)),
	}
	got := j.Marshal()
	want := []byte{
		0xff, 0x03, 1, 2, 3,
		0x05, 0x00, 0xf0, 0xfd, 0x00, 0xff,
	}
	require.Equal(t, want, got)
}

func TestUnitJournalRoundTrip(t *testing.T) {
	values := []StoreValue{TombstoneValue(), ExtantValue([]byte{}), ExtantValue([]byte{1, 2, 3})}
	for _, v := range values {
		j := UnitJournal{
			Value:         v,
			UpdateHeights: NewHeightList(NewChainHeight(1), NewChainHeight(2)),
		}
		parsed, err := ParseUnitJournal(j.Marshal())
		require.NoError(t, err)
		require.Equal(t, j.Value.IsTombstone(), parsed.Value.IsTombstone())
		require.Equal(t, j.Value.Data(), parsed.Value.Data())
		require.Equal(t, j.UpdateHeights.Heights(), parsed.UpdateHeights.Heights())
	}
}
