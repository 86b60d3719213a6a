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

// TransactionId identifies one transaction's place in the commit queue.
// Ids are assigned in strictly increasing order starting from the first
// value after initialTransactionId, so the zero value never names a real
// transaction.
type TransactionId uint64

const initialTransactionId TransactionId = 1

func (t *TransactionId) increment() {
	*t++
}

// AsUint64 returns the id's wire/answer representation.
func (t TransactionId) AsUint64() uint64 {
	return uint64(t)
}
