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

package config

import (
	"github.com/pkg/errors"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/kv"
)

// chainInfoKey is the single global key every data root's ChainInfo record
// lives under, one per namespace: the sigil byte alone, since this
// keyspace is never grouping-scoped or range-scanned.
var chainInfoKey = kv.SigilChainInfo.Prefix()

// EnsureChainInfo stamps store's currently selected namespace with chain
// and the running engine's DBVersion the first time it's opened, and on
// every later open confirms the stored chain name still matches — the
// "resolved config's chain name and version are written into the ChainInfo
// sigil keyspace on first open" behavior of SPEC_FULL §10.3.
func EnsureChainInfo(store kv.Store, chain basics.ChainName) error {
	existing, found, err := store.Get(chainInfoKey)
	if err != nil {
		return errors.Wrap(err, "config: read chain info")
	}
	if !found {
		value := basics.CurrentDBVersion.Marshal()
		value = basics.EncodeVarint(value, uint64(len(chain.String())))
		value = append(value, chain.String()...)
		if err := store.Set(chainInfoKey, value); err != nil {
			return errors.Wrap(err, "config: write chain info")
		}
		return nil
	}

	storedVersion, storedName, err := parseChainInfo(existing)
	if err != nil {
		return errors.Wrap(err, "config: decode chain info")
	}
	if !storedName.Equal(chain) {
		return errors.Wrapf(ErrChainNameMismatch, "stored %q, configured %q", storedName.String(), chain.String())
	}
	_ = storedVersion // no migration path yet; recorded for a future reader
	return nil
}

func parseChainInfo(data []byte) (basics.DBVersion, basics.ChainName, error) {
	version, err := basics.ParseDBVersion(data)
	if err != nil {
		return basics.DBVersion{}, basics.ChainName{}, err
	}
	rest := data[6:]
	length, n, err := basics.DecodeVarint(rest)
	if err != nil {
		return basics.DBVersion{}, basics.ChainName{}, err
	}
	rest = rest[n:]
	if uint64(len(rest)) < length {
		return basics.DBVersion{}, basics.ChainName{}, basics.ErrVarintMalformed
	}
	return version, basics.NewChainName(string(rest[:length])), nil
}
