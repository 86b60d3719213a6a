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

import (
	"sync"

	"github.com/dgraph-io/badger/v4"
	"github.com/pkg/errors"
)

const namespaceRegistryKey = "\x00namespaces"

// BadgerStore is the persistent Store backed by a Badger LSM tree. Each
// Namespace is a key prefix within a single Badger database rather than a
// separate database, so cross-namespace iteration never happens by
// accident: every read path goes through namespacedKey first.
type BadgerStore struct {
	db *badger.DB

	mu    sync.RWMutex
	names map[Namespace]struct{}
	order []Namespace
	cur   Namespace
}

// OpenBadgerStore opens (creating if absent) a Badger database rooted at
// dir. cfg is consulted for sigils whose keyspace benefits from a prefix
// iterator option; Badger's own bloom filters already cover the common
// case, so cfg currently only documents intent for callers building scan
// iterators (see FilterPrefix).
func OpenBadgerStore(dir string, cfg SigilCfg) (*BadgerStore, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	db, err := badger.Open(opts)
	if err != nil {
		return nil, errors.Wrap(err, "kv: open badger store")
	}
	s := &BadgerStore{
		db:    db,
		names: make(map[Namespace]struct{}),
		cur:   DefaultNamespace,
	}
	if err := s.loadNamespaceRegistry(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := s.CreateNamespace(DefaultNamespace); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *BadgerStore) loadNamespaceRegistry() error {
	return s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(namespaceRegistryKey))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			for _, name := range splitNamespaceList(val) {
				s.names[Namespace(name)] = struct{}{}
				s.order = append(s.order, Namespace(name))
			}
			return nil
		})
	})
}

func splitNamespaceList(val []byte) []string {
	if len(val) == 0 {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i <= len(val); i++ {
		if i == len(val) || val[i] == '\n' {
			if i > start {
				out = append(out, string(val[start:i]))
			}
			start = i + 1
		}
	}
	return out
}

func joinNamespaceList(names []Namespace) []byte {
	buf := make([]byte, 0, 64)
	for _, n := range names {
		buf = append(buf, []byte(n)...)
		buf = append(buf, '\n')
	}
	return buf
}

func namespacedKey(ns Namespace, key []byte) []byte {
	buf := make([]byte, 0, len(ns)+1+len(key))
	buf = append(buf, []byte(ns)...)
	buf = append(buf, 0x00)
	buf = append(buf, key...)
	return buf
}

// Get implements Store.
func (s *BadgerStore) Get(key []byte) ([]byte, bool, error) {
	ns := s.ReadNamespace()
	var out []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(namespacedKey(ns, key))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			out = append([]byte(nil), val...)
			return nil
		})
	})
	if err != nil {
		return nil, false, errors.Wrap(err, "kv: badger get")
	}
	return out, out != nil, nil
}

// Set implements Store.
func (s *BadgerStore) Set(key, value []byte) error {
	ns := s.ReadNamespace()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set(namespacedKey(ns, key), value)
	})
	if err != nil {
		return errors.Wrap(err, "kv: badger set")
	}
	return nil
}

// AtomicBatchSet implements Store.
func (s *BadgerStore) AtomicBatchSet(batch []KVPair) error {
	ns := s.ReadNamespace()
	err := s.db.Update(func(txn *badger.Txn) error {
		for _, kv := range batch {
			if err := txn.Set(namespacedKey(ns, kv.Key), kv.Value); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Wrap(err, "kv: badger atomic batch set")
	}
	return nil
}

// Delete implements Store.
func (s *BadgerStore) Delete(key []byte) error {
	ns := s.ReadNamespace()
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(namespacedKey(ns, key))
	})
	if err != nil {
		return errors.Wrap(err, "kv: badger delete")
	}
	return nil
}

// FilterPrefix implements Store.
func (s *BadgerStore) FilterPrefix(prefix []byte) ([]KVPair, error) {
	ns := s.ReadNamespace()
	full := namespacedKey(ns, prefix)
	var out []KVPair
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = full
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(full); it.ValidForPrefix(full); it.Next() {
			item := it.Item()
			key := append([]byte(nil), item.Key()[len(ns)+1:]...)
			err := item.Value(func(val []byte) error {
				out = append(out, KVPair{Key: key, Value: append([]byte(nil), val...)})
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "kv: badger filter prefix")
	}
	return out, nil
}

// CreateNamespace implements Store.
func (s *BadgerStore) CreateNamespace(name Namespace) error {
	s.mu.Lock()
	if _, ok := s.names[name]; ok {
		s.mu.Unlock()
		return nil
	}
	s.names[name] = struct{}{}
	s.order = append(s.order, name)
	order := append([]Namespace(nil), s.order...)
	s.mu.Unlock()

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(namespaceRegistryKey), joinNamespaceList(order))
	})
	if err != nil {
		return errors.Wrap(err, "kv: badger create namespace")
	}
	return nil
}

// SwitchNamespace implements Store.
func (s *BadgerStore) SwitchNamespace(name Namespace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.names[name]; !ok {
		return ErrNamespaceNotFound
	}
	s.cur = name
	return nil
}

// ReadNamespace implements Store.
func (s *BadgerStore) ReadNamespace() Namespace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Namespaces implements Store.
func (s *BadgerStore) Namespaces() []Namespace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Namespace, len(s.order))
	copy(out, s.order)
	return out
}

// Close implements Store.
func (s *BadgerStore) Close() error {
	return s.db.Close()
}
