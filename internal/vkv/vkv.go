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

// Package vkv is the versioned key-value store: it gives the flat
// key/value contract from internal/kv a notion of height, so every write
// is remembered rather than overwritten, and any past value can be read
// back by the height it was live at.
package vkv

import (
	"sort"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/kv"
	"github.com/immux/immuxdb/internal/logging"
	"github.com/immux/immuxdb/internal/metrics"
)

// NowFunc returns the current Unix timestamp. Tests may swap this out for
// a fixed clock; production wires it to time.Now().Unix.
type NowFunc func() int64

// Store is the versioned store built on top of a flat kv.Store.
type Store struct {
	engine kv.Store
	logger *logging.Logger
	now    NowFunc

	journals *lru.Cache[string, basics.UnitJournal]
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLogger overrides the default root logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithClock overrides how the store reads the current time, for
// deterministic tests.
func WithClock(now NowFunc) Option {
	return func(s *Store) { s.now = now }
}

// NewStore wraps engine with versioning. cacheSize bounds the journal read
// cache; a size of 0 disables caching.
func NewStore(engine kv.Store, cacheSize int, opts ...Option) (*Store, error) {
	s := &Store{
		engine: engine,
		logger: logging.Root().Named("vkv"),
		now:    func() int64 { return time.Now().Unix() },
	}
	for _, opt := range opts {
		opt(s)
	}
	if cacheSize > 0 {
		cache, err := lru.New[string, basics.UnitJournal](cacheSize)
		if err != nil {
			return nil, errors.Wrap(err, "vkv: build journal cache")
		}
		s.journals = cache
	}
	return s, nil
}

func journalKey(key basics.StoreKey) []byte {
	return kv.SigilUnitJournal.PrefixKey(key.Bytes())
}

func extractJournalStoreKey(physicalKey []byte) []byte {
	return physicalKey[1:]
}

func chainHeightKey() []byte {
	return kv.SigilChainHeight.Prefix()
}

func instructionKey(height basics.ChainHeight) []byte {
	return kv.SigilHeightToInstructionRecord.PrefixKey(height.Marshal())
}

// GetCurrentHeight reports the chain's current height.
func (s *Store) GetCurrentHeight() basics.ChainHeight {
	return s.getHeight()
}

func (s *Store) getHeight() basics.ChainHeight {
	raw, ok, err := s.engine.Get(chainHeightKey())
	if err != nil || !ok {
		return basics.ZeroChainHeight
	}
	height, _, err := basics.ParseChainHeight(raw)
	if err != nil {
		return basics.ZeroChainHeight
	}
	return height
}

func (s *Store) setHeight(height basics.ChainHeight) error {
	return s.engine.Set(chainHeightKey(), height.Marshal())
}

func (s *Store) incrementChainHeight() (basics.ChainHeight, error) {
	next := s.getHeight().Increment()
	if err := s.setHeight(next); err != nil {
		return basics.ChainHeight{}, err
	}
	return next, nil
}

func (s *Store) saveInstructionRecord(height basics.ChainHeight, rec instructions.InstructionRecord) error {
	encoded, err := encodeInstructionRecord(rec)
	if err != nil {
		return errors.Wrap(ErrSaveInstructionFailed, err.Error())
	}
	if err := s.engine.Set(instructionKey(height), encoded); err != nil {
		return errors.Wrap(ErrSaveInstructionFailed, err.Error())
	}
	return nil
}

func (s *Store) loadInstructionRecord(height basics.ChainHeight) (instructions.InstructionRecord, error) {
	raw, ok, err := s.engine.Get(instructionKey(height))
	if err != nil {
		return instructions.InstructionRecord{}, err
	}
	if !ok {
		return instructions.InstructionRecord{}, errors.New("vkv: no instruction record at height")
	}
	return decodeInstructionRecord(raw)
}

// journalCacheKey namespaces key.Bytes() by the currently selected
// namespace. Two chains can otherwise share the exact same StoreKey bytes
// (grouping/id pairs are chain-local), so caching by key bytes alone would
// let a cached journal from one chain answer a read issued after
// SwitchNamespace to another.
func (s *Store) journalCacheKey(key basics.StoreKey) string {
	return string(s.engine.ReadNamespace()) + "\x00" + string(key.Bytes())
}

func (s *Store) getJournal(key basics.StoreKey) (basics.UnitJournal, error) {
	cacheKey := s.journalCacheKey(key)
	if s.journals != nil {
		if journal, ok := s.journals.Get(cacheKey); ok {
			return journal, nil
		}
	}
	raw, ok, err := s.engine.Get(journalKey(key))
	if err != nil {
		return basics.UnitJournal{}, err
	}
	if !ok {
		return basics.UnitJournal{}, &MissingJournalError{Key: key.Bytes()}
	}
	journal, err := basics.ParseUnitJournal(raw)
	if err != nil {
		return basics.UnitJournal{}, err
	}
	if s.journals != nil {
		s.journals.Add(cacheKey, journal)
	}
	return journal, nil
}

func (s *Store) setJournal(key basics.StoreKey, journal basics.UnitJournal) error {
	if err := s.engine.Set(journalKey(key), journal.Marshal()); err != nil {
		return err
	}
	if s.journals != nil {
		s.journals.Add(s.journalCacheKey(key), journal)
	}
	return nil
}

func (s *Store) executeVersionedSet(key basics.StoreKey, value basics.StoreValue, height basics.ChainHeight) error {
	journal, err := s.getJournal(key)
	if err != nil {
		if !errors.As(err, new(*MissingJournalError)) {
			return err
		}
		journal = basics.UnitJournal{Value: value, UpdateHeights: basics.NewHeightList(height)}
		return s.setJournal(key, journal)
	}
	journal.UpdateHeights.Push(height)
	journal.Value = value
	return s.setJournal(key, journal)
}

func (s *Store) getLatestValue(key basics.StoreKey) (basics.StoreValue, error) {
	journal, err := s.getJournal(key)
	if err != nil {
		return basics.StoreValue{}, err
	}
	return journal.Value, nil
}

// getValueAfterHeightRecurse replays a key's journal backwards from
// requestedHeight, following RevertMany/RevertAll chains as needed, bounded
// by MaxRecursion to guarantee termination even over a corrupted log.
func (s *Store) getValueAfterHeightRecurse(key basics.StoreKey, requestedHeight basics.ChainHeight, depth int) (basics.StoreValue, error) {
	if depth > MaxRecursion {
		return basics.StoreValue{}, ErrTooManyRecursion
	}
	journal, err := s.getJournal(key)
	if err != nil {
		return basics.StoreValue{}, err
	}
	heights := journal.UpdateHeights.Heights()
	var candidates []basics.ChainHeight
	for _, h := range heights {
		if h.AtOrAfter(requestedHeight.Increment()) {
			break
		}
		candidates = append(candidates, h)
	}
	for i := len(candidates) - 1; i >= 0; i-- {
		height := candidates[i]
		rec, err := s.loadInstructionRecord(height)
		if err != nil {
			return basics.StoreValue{}, err
		}
		switch instr := rec.Instruction.(type) {
		case instructions.SetManyInstruction:
			for _, target := range instr.Targets {
				if string(target.Key.Bytes()) == string(key.Bytes()) {
					return target.Value, nil
				}
			}
		case instructions.RevertManyInstruction:
			for _, target := range instr.Targets {
				if string(target.Key.Bytes()) == string(key.Bytes()) {
					return s.getValueAfterHeightRecurse(key, target.Height, depth+1)
				}
			}
			return basics.StoreValue{}, ErrCannotFindSuitableVersion
		case instructions.RevertAllInstruction:
			return s.getValueAfterHeightRecurse(key, instr.TargetHeight, depth+1)
		default:
			return basics.StoreValue{}, ErrUnexpectedInstruction
		}
	}
	return basics.StoreValue{}, ErrCannotFindSuitableVersion
}

func (s *Store) getValueAfterHeight(key basics.StoreKey, requestedHeight basics.ChainHeight) (basics.StoreValue, error) {
	return s.getValueAfterHeightRecurse(key, requestedHeight, 0)
}

func findAppropriateHeight(heights []basics.ChainHeight, requested basics.ChainHeight) (basics.ChainHeight, bool) {
	for _, h := range heights {
		if h.Compare(requested) > 0 {
			break
		}
		if h.Compare(requested) == 0 {
			return h, true
		}
	}
	return basics.ChainHeight{}, false
}

func (s *Store) revertOne(key basics.StoreKey, targetHeight, nextHeight basics.ChainHeight) error {
	if targetHeight.AtOrAfter(nextHeight) {
		return ErrTryingToRevertToFuture
	}
	journal, err := s.getJournal(key)
	if err != nil {
		return err
	}
	height, ok := findAppropriateHeight(journal.UpdateHeights.Heights(), targetHeight)
	if !ok {
		return ErrCannotFindSuitableVersion
	}
	value, err := s.getValueAfterHeight(key, height)
	if err != nil {
		return err
	}
	journal.UpdateHeights.Push(nextHeight)
	journal.Value = value
	return s.setJournal(key, journal)
}

// extractAffectedKeys walks the instruction log backwards from
// currentHeight to targetHeight (inclusive) and collects every key any
// write instruction in that span touched, deduplicated and sorted. This is
// what lets RevertAll figure out its own blast radius without the caller
// naming any keys up front.
func (s *Store) extractAffectedKeys(targetHeight, currentHeight basics.ChainHeight) ([]basics.StoreKey, error) {
	seen := make(map[string]basics.StoreKey)
	height := currentHeight
	for {
		rec, err := s.loadInstructionRecord(height)
		if err == nil {
			switch instr := rec.Instruction.(type) {
			case instructions.SetManyInstruction:
				for _, t := range instr.Targets {
					seen[string(t.Key.Bytes())] = t.Key
				}
			case instructions.RevertManyInstruction:
				for _, t := range instr.Targets {
					seen[string(t.Key.Bytes())] = t.Key
				}
			case instructions.RevertAllInstruction:
				for _, k := range rec.AffectedKeys {
					seen[string(k.Bytes())] = k
				}
			}
		}
		if height.Compare(targetHeight) <= 0 {
			break
		}
		height = height.Decrement()
	}
	out := make([]basics.StoreKey, 0, len(seen))
	for _, k := range seen {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		return string(out[i].Bytes()) < string(out[j].Bytes())
	})
	return out, nil
}

// Execute dispatches a single instruction and returns its answer.
// TransactionalData/TransactionMeta instructions must be handled by the TKV
// layer before reaching here; VKV rejects them.
func (s *Store) Execute(instr instructions.Instruction) (instructions.Answer, error) {
	switch in := instr.(type) {
	case instructions.SwitchNamespaceInstruction:
		if err := s.engine.SwitchNamespace(in.NewNamespace); err != nil {
			return nil, err
		}
		return instructions.SwitchNamespaceOkAnswer{NewNamespace: s.engine.ReadNamespace()}, nil

	case instructions.ReadNamespaceInstruction:
		return instructions.ReadNamespaceOkAnswer{Namespace: s.engine.ReadNamespace()}, nil

	case instructions.GetOneInstruction:
		timer := prometheus.NewTimer(metrics.VKVReadLatency)
		defer timer.ObserveDuration()
		metrics.VKVReads.WithLabelValues("get_one").Inc()
		var value basics.StoreValue
		var err error
		if in.Height == nil {
			value, err = s.getLatestValue(in.Key)
		} else {
			value, err = s.getValueAfterHeight(in.Key, *in.Height)
		}
		if err != nil {
			return nil, err
		}
		return instructions.GetOneOkAnswer{Value: value}, nil

	case instructions.GetJournalInstruction:
		timer := prometheus.NewTimer(metrics.VKVReadLatency)
		defer timer.ObserveDuration()
		metrics.VKVReads.WithLabelValues("get_journal").Inc()
		journal, err := s.getJournal(in.Key)
		if err != nil {
			return nil, err
		}
		return instructions.GetJournalOkAnswer{Journal: journal}, nil

	case instructions.GetManyInstruction:
		timer := prometheus.NewTimer(metrics.VKVReadLatency)
		defer timer.ObserveDuration()
		metrics.VKVReads.WithLabelValues("get_many").Inc()
		return s.executeGetMany(in)

	case instructions.SetManyInstruction:
		answer, err := s.executeSetMany(in)
		if err != nil {
			metrics.VKVWrites.WithLabelValues("error").Inc()
		} else {
			metrics.VKVWrites.WithLabelValues("ok").Inc()
		}
		return answer, err

	case instructions.RevertManyInstruction:
		answer, err := s.executeRevertMany(in)
		if err != nil {
			metrics.VKVWrites.WithLabelValues("error").Inc()
		} else {
			metrics.VKVWrites.WithLabelValues("ok").Inc()
		}
		return answer, err

	case instructions.RevertAllInstruction:
		answer, err := s.executeRevertAll(in)
		if err != nil {
			metrics.VKVWrites.WithLabelValues("error").Inc()
		} else {
			metrics.VKVWrites.WithLabelValues("ok").Inc()
		}
		return answer, err

	default:
		return nil, ErrUnexpectedInstruction
	}
}

func (s *Store) executeGetMany(in instructions.GetManyInstruction) (instructions.Answer, error) {
	if !in.Targets.HasPrefix {
		data := make([]instructions.KVPair, 0, len(in.Targets.Keys))
		for _, key := range in.Targets.Keys {
			var value basics.StoreValue
			var err error
			if in.Height == nil {
				value, err = s.getLatestValue(key)
			} else {
				value, err = s.getValueAfterHeight(key, *in.Height)
			}
			if err != nil {
				return nil, err
			}
			data = append(data, instructions.KVPair{Key: key, Value: value})
		}
		return instructions.GetManyOkAnswer{Data: data}, nil
	}

	physicalPrefix := kv.SigilUnitJournal.PrefixKey(in.Targets.Prefix)
	pairs, err := s.engine.FilterPrefix(physicalPrefix)
	if err != nil {
		return nil, err
	}
	data := make([]instructions.KVPair, 0, len(pairs))
	for _, pair := range pairs {
		rawKey := extractJournalStoreKey(pair.Key)
		spec, err := basics.ParseStoreKey(rawKey)
		if err != nil {
			return nil, err
		}
		journal, err := basics.ParseUnitJournal(pair.Value)
		if err != nil {
			return nil, err
		}
		if journal.Value.IsTombstone() {
			continue
		}
		data = append(data, instructions.KVPair{Key: basics.NewStoreKey(spec), Value: journal.Value})
	}
	return instructions.GetManyOkAnswer{Data: data}, nil
}

func (s *Store) executeSetMany(in instructions.SetManyInstruction) (instructions.Answer, error) {
	nextHeight, err := s.incrementChainHeight()
	if err != nil {
		return nil, err
	}
	for _, target := range in.Targets {
		if err := s.executeVersionedSet(target.Key, target.Value, nextHeight); err != nil {
			return nil, err
		}
	}
	rec := instructions.NewInstructionRecord(in, s.timestamp())
	if err := s.saveInstructionRecord(nextHeight, rec); err != nil {
		return nil, err
	}
	s.logger.Info("set many", "count", len(in.Targets), "height", nextHeight.AsUint64())
	return instructions.SetOkAnswer{Count: len(in.Targets)}, nil
}

func (s *Store) executeRevertMany(in instructions.RevertManyInstruction) (instructions.Answer, error) {
	nextHeight, err := s.incrementChainHeight()
	if err != nil {
		return nil, err
	}
	for _, target := range in.Targets {
		if err := s.revertOne(target.Key, target.Height, nextHeight); err != nil {
			return nil, err
		}
	}
	rec := instructions.NewInstructionRecord(in, s.timestamp())
	if err := s.saveInstructionRecord(nextHeight, rec); err != nil {
		return nil, err
	}
	s.logger.Info("revert many", "count", len(in.Targets), "height", nextHeight.AsUint64())
	return instructions.RevertOkAnswer{}, nil
}

func (s *Store) executeRevertAll(in instructions.RevertAllInstruction) (instructions.Answer, error) {
	nextHeight, err := s.incrementChainHeight()
	if err != nil {
		return nil, err
	}
	if in.TargetHeight.AtOrAfter(nextHeight) {
		return nil, ErrTryingToRevertToFuture
	}
	affectedKeys, err := s.extractAffectedKeys(in.TargetHeight, nextHeight)
	if err != nil {
		return nil, err
	}
	for _, key := range affectedKeys {
		if err := s.revertOne(key, in.TargetHeight, nextHeight); err != nil {
			return nil, err
		}
	}
	rec := instructions.NewInstructionRecord(in, s.timestamp())
	rec.AffectedKeys = affectedKeys
	if err := s.saveInstructionRecord(nextHeight, rec); err != nil {
		return nil, err
	}
	s.logger.Warn("revert all does not update the reverse index; rebuild indices after a revert-all if queries rely on them",
		"target_height", in.TargetHeight.AsUint64(), "affected_keys", len(affectedKeys))
	return instructions.RevertAllOkAnswer{RevertedKeys: affectedKeys}, nil
}

// ExtractAffectedKeys re-derives which keys a RevertAll touched between
// targetHeight and currentHeight, exported so the transaction layer can
// compute the same blast radius when undoing an aborted RevertAll.
func (s *Store) ExtractAffectedKeys(targetHeight, currentHeight basics.ChainHeight) ([]basics.StoreKey, error) {
	return s.extractAffectedKeys(targetHeight, currentHeight)
}

// SetHeight forces the chain's current height, used by the transaction
// layer to roll the counter back after an abort.
func (s *Store) SetHeight(height basics.ChainHeight) error {
	return s.setHeight(height)
}

// InvalidateUpdateAfterHeight forgets every update a key's journal recorded
// strictly after targetHeight, as if those writes never happened, and
// recomputes the key's current value from what remains. A transaction abort
// calls this once per key the transaction touched.
func (s *Store) InvalidateUpdateAfterHeight(key basics.StoreKey, targetHeight basics.ChainHeight) error {
	journal, err := s.getJournal(key)
	if err != nil {
		if errors.As(err, new(*MissingJournalError)) {
			return nil
		}
		return err
	}
	var kept []basics.ChainHeight
	for _, h := range journal.UpdateHeights.Heights() {
		if h.Compare(targetHeight) <= 0 {
			kept = append(kept, h)
		}
	}
	if len(kept) == 0 {
		if s.journals != nil {
			s.journals.Remove(s.journalCacheKey(key))
		}
		return s.engine.Delete(journalKey(key))
	}
	value, err := s.getValueAfterHeight(key, kept[len(kept)-1])
	if err != nil {
		return err
	}
	return s.setJournal(key, basics.UnitJournal{Value: value, UpdateHeights: basics.NewHeightList(kept...)})
}

// InvalidateInstructionRecordsAfterHeight deletes every instruction record
// above targetHeight up to currentHeight. Once the height counter itself is
// rolled back (SetHeight), no read can ever request one of these heights
// again; this pass just reclaims the orphaned entries rather than leaving
// them as garbage for the next write to silently overwrite.
func (s *Store) InvalidateInstructionRecordsAfterHeight(targetHeight, currentHeight basics.ChainHeight) error {
	height := currentHeight
	for height.Compare(targetHeight) > 0 {
		if err := s.engine.Delete(instructionKey(height)); err != nil {
			return err
		}
		height = height.Decrement()
	}
	return nil
}

func (s *Store) timestamp() int64 {
	if s.now == nil {
		return 0
	}
	return s.now()
}
