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

// Package kv is the bottom layer of the storage stack: a flat,
// namespace-partitioned byte-string key/value store with no notion of
// versioning, journals, or documents. Everything above it (VKV, TKV, the
// executor) is built purely in terms of this interface.
package kv

import "errors"

// Namespace is the name of one of a store's independent, isolated
// keyspaces. The VKV layer maps one namespace per chain.
type Namespace string

// DefaultNamespace is used by stores opened without an explicit namespace.
const DefaultNamespace Namespace = "default"

// ErrNamespaceNotFound is returned by SwitchNamespace when asked to switch
// to a namespace that was never created.
var ErrNamespaceNotFound = errors.New("kv: namespace not found")

// KVPair is a single key/value entry, used for batch writes and scan
// results.
type KVPair struct {
	Key   []byte
	Value []byte
}

// Store is the contract every physical engine (in-memory, Badger-backed,
// ...) implements. All methods operate against the store's currently
// selected namespace except where a namespace is explicitly named.
type Store interface {
	// Get fetches the raw bytes at key, reporting false if absent.
	Get(key []byte) ([]byte, bool, error)

	// Set writes key/value, overwriting any existing value.
	Set(key, value []byte) error

	// AtomicBatchSet writes every pair in batch as a single atomic unit:
	// either all pairs become visible or none do.
	AtomicBatchSet(batch []KVPair) error

	// Delete removes key, a no-op if it is already absent. Used by a
	// transaction abort to reclaim the instruction-log entries it rolled
	// back past and the journals of keys the transaction first created.
	Delete(key []byte) error

	// FilterPrefix returns every key/value pair whose key starts with
	// prefix, in ascending key order.
	FilterPrefix(prefix []byte) ([]KVPair, error)

	// CreateNamespace registers a new, empty namespace. A no-op if the
	// namespace already exists.
	CreateNamespace(name Namespace) error

	// SwitchNamespace selects name as the namespace subsequent calls
	// operate against. Returns ErrNamespaceNotFound if it was never
	// created.
	SwitchNamespace(name Namespace) error

	// ReadNamespace reports the currently selected namespace.
	ReadNamespace() Namespace

	// Namespaces lists every namespace that has been created.
	Namespaces() []Namespace

	// Close releases any resources held by the store.
	Close() error
}
