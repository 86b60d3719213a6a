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
	"strings"
	"sync"

	"github.com/google/btree"
)

// memItem is one entry in a MemStore namespace's ordered tree, keyed by raw
// byte string so prefix scans can walk a contiguous key range.
type memItem struct {
	key   string
	value []byte
}

func memItemLess(a, b memItem) bool {
	return a.key < b.key
}

// MemStore is an in-memory Store backed by an ordered B-tree per namespace,
// suitable for tests and for the ephemeral "memory" engine option. Prefix
// scans walk the tree from the prefix's lower bound and stop at the first
// key that no longer shares it, so lookups stay O(log n + matches) instead
// of a linear scan of every key.
type MemStore struct {
	mu    sync.RWMutex
	trees map[Namespace]*btree.BTreeG[memItem]
	order []Namespace
	cur   Namespace
}

// NewMemStore builds an empty MemStore with DefaultNamespace selected.
func NewMemStore() *MemStore {
	s := &MemStore{
		trees: make(map[Namespace]*btree.BTreeG[memItem]),
		cur:   DefaultNamespace,
	}
	_ = s.CreateNamespace(DefaultNamespace)
	return s
}

func (s *MemStore) tree() *btree.BTreeG[memItem] {
	return s.trees[s.cur]
}

// Get implements Store.
func (s *MemStore) Get(key []byte) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.tree().Get(memItem{key: string(key)})
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), item.value...), true, nil
}

// Set implements Store.
func (s *MemStore) Set(key, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree().ReplaceOrInsert(memItem{key: string(key), value: append([]byte(nil), value...)})
	return nil
}

// AtomicBatchSet implements Store. MemStore holds a single process-wide
// lock for the duration of the batch, so this is trivially atomic with
// respect to any concurrent reader.
func (s *MemStore) AtomicBatchSet(batch []KVPair) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	tree := s.tree()
	for _, kv := range batch {
		tree.ReplaceOrInsert(memItem{key: string(kv.Key), value: append([]byte(nil), kv.Value...)})
	}
	return nil
}

// Delete implements Store.
func (s *MemStore) Delete(key []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tree().Delete(memItem{key: string(key)})
	return nil
}

// FilterPrefix implements Store.
func (s *MemStore) FilterPrefix(prefix []byte) ([]KVPair, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []KVPair
	s.tree().AscendGreaterOrEqual(memItem{key: string(prefix)}, func(item memItem) bool {
		if !strings.HasPrefix(item.key, string(prefix)) {
			return false
		}
		out = append(out, KVPair{Key: []byte(item.key), Value: append([]byte(nil), item.value...)})
		return true
	})
	return out, nil
}

// CreateNamespace implements Store.
func (s *MemStore) CreateNamespace(name Namespace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trees[name]; ok {
		return nil
	}
	s.trees[name] = btree.NewG(32, memItemLess)
	s.order = append(s.order, name)
	return nil
}

// SwitchNamespace implements Store.
func (s *MemStore) SwitchNamespace(name Namespace) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.trees[name]; !ok {
		return ErrNamespaceNotFound
	}
	s.cur = name
	return nil
}

// ReadNamespace implements Store.
func (s *MemStore) ReadNamespace() Namespace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cur
}

// Namespaces implements Store.
func (s *MemStore) Namespaces() []Namespace {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Namespace, len(s.order))
	copy(out, s.order)
	return out
}

// Close implements Store. MemStore holds no external resources.
func (s *MemStore) Close() error {
	return nil
}
