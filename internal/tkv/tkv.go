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

// Package tkv layers a single-writer transaction queue on top of VKV.
// Exactly one transaction, the queue's front, may write at a time; anyone
// else that starts one is appended and told it is pending. Aborting a
// transaction unwinds every key it touched back to the height the chain was
// at before it started, and the chain height counter along with it, so an
// abort leaves no visible trace beyond the wasted instruction-log entries
// themselves, which are swept up as soon as the abort completes.
package tkv

import (
	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/logging"
	"github.com/immux/immuxdb/internal/metrics"
	"github.com/immux/immuxdb/internal/vkv"
)

// Store is the transactional key-value store: a VKV plus a FIFO queue of
// pending transaction ids.
type Store struct {
	vkv    *vkv.Store
	logger *logging.Logger

	executedInstructions        []instructions.Instruction
	lastHeightBeforeTransaction basics.ChainHeight
	queue                       []TransactionId
	currentActiveTransactionId  TransactionId
}

// Option configures a Store at construction.
type Option func(*Store)

// WithLogger overrides the default root logger.
func WithLogger(l *logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// NewStore wraps vkvStore with transaction-queue semantics.
func NewStore(vkvStore *vkv.Store, opts ...Option) *Store {
	s := &Store{
		vkv:                         vkvStore,
		logger:                      logging.Root().Named("tkv"),
		lastHeightBeforeTransaction: vkvStore.GetCurrentHeight(),
		currentActiveTransactionId:  initialTransactionId,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Execute dispatches a single instruction, which may be a transaction
// lifecycle instruction, data wrapped for a specific transaction, a
// namespace control instruction, or a plain read/write instruction issued
// outside any transaction.
func (s *Store) Execute(instr instructions.Instruction) (instructions.Answer, error) {
	switch in := instr.(type) {
	case instructions.StartTransactionInstruction:
		return s.startTransaction()

	case instructions.CommitTransactionInstruction:
		return s.commitTransaction(in)

	case instructions.AbortTransactionInstruction:
		return s.abortTransaction(in)

	case instructions.TransactionalDataInstruction:
		return s.executeTransactionalData(in)

	case instructions.SwitchNamespaceInstruction:
		if len(s.queue) != 0 {
			return nil, ErrCannotSwitchNamespaceWhileTransactionIsOngoing
		}
		return s.passToVkv(instr)

	case instructions.ReadNamespaceInstruction:
		return s.passToVkv(instr)

	case instructions.DataReadInstruction, instructions.DataWriteInstruction:
		return s.passToVkv(instr)

	default:
		return nil, ErrUnrecognizedInstruction
	}
}

func (s *Store) passToVkv(instr instructions.Instruction) (instructions.Answer, error) {
	if len(s.queue) != 0 {
		return nil, ErrTransactionInProgress
	}
	return s.vkv.Execute(instr)
}

func (s *Store) startTransaction() (instructions.Answer, error) {
	s.currentActiveTransactionId.increment()
	id := s.currentActiveTransactionId

	if len(s.queue) == 0 {
		s.queue = append(s.queue, id)
		s.lastHeightBeforeTransaction = s.vkv.GetCurrentHeight()
		s.executedInstructions = nil
		s.logger.Info("transaction started", "transaction_id", id.AsUint64())
		metrics.TKVTransactions.WithLabelValues("started").Inc()
		metrics.TKVQueueDepth.Set(float64(len(s.queue)))
		return instructions.TransactionStartedAnswer{TransactionId: id.AsUint64()}, nil
	}

	s.queue = append(s.queue, id)
	s.logger.Info("transaction queued", "transaction_id", id.AsUint64())
	metrics.TKVTransactions.WithLabelValues("queued").Inc()
	metrics.TKVQueueDepth.Set(float64(len(s.queue)))
	return instructions.TransactionAppendedAnswer{TransactionId: id.AsUint64()}, nil
}

func (s *Store) commitTransaction(in instructions.CommitTransactionInstruction) (instructions.Answer, error) {
	front, ok := s.activeTransaction(in.TransactionId)
	if !ok {
		return nil, ErrTransactionNotStarted
	}

	s.executedInstructions = nil
	s.lastHeightBeforeTransaction = s.vkv.GetCurrentHeight()
	s.queue = s.queue[1:]

	var next *uint64
	if len(s.queue) > 0 {
		v := s.queue[0].AsUint64()
		next = &v
	}
	s.logger.Info("transaction committed", "transaction_id", front.AsUint64())
	metrics.TKVTransactions.WithLabelValues("committed").Inc()
	metrics.TKVQueueDepth.Set(float64(len(s.queue)))
	return instructions.TransactionCommittedAnswer{
		CommittedTransactionId:  front.AsUint64(),
		NextActiveTransactionId: next,
	}, nil
}

func (s *Store) abortTransaction(in instructions.AbortTransactionInstruction) (instructions.Answer, error) {
	front, ok := s.activeTransaction(in.TransactionId)
	if !ok {
		return nil, ErrTransactionNotStarted
	}

	currentHeight := s.vkv.GetCurrentHeight()
	if err := s.undoTransaction(currentHeight); err != nil {
		return nil, err
	}
	s.executedInstructions = nil
	if err := s.vkv.SetHeight(s.lastHeightBeforeTransaction); err != nil {
		return nil, err
	}
	s.queue = s.queue[1:]
	s.logger.Info("transaction aborted", "transaction_id", front.AsUint64())
	metrics.TKVTransactions.WithLabelValues("aborted").Inc()
	metrics.TKVQueueDepth.Set(float64(len(s.queue)))
	return instructions.TransactionAbortedAnswer{TransactionId: front.AsUint64()}, nil
}

func (s *Store) executeTransactionalData(in instructions.TransactionalDataInstruction) (instructions.Answer, error) {
	if _, ok := s.activeTransaction(in.TransactionId); !ok {
		return nil, ErrTransactionNotStarted
	}

	answer, err := s.vkv.Execute(in.Inner)
	if err != nil {
		return nil, err
	}
	if _, isWrite := in.Inner.(instructions.DataWriteInstruction); isWrite {
		s.executedInstructions = append(s.executedInstructions, in.Inner)
	}
	return instructions.TransactionalDataAnswer{TransactionId: in.TransactionId, Inner: answer}, nil
}

// activeTransaction reports the queue's front transaction id, and whether
// it matches id.
func (s *Store) activeTransaction(id uint64) (TransactionId, bool) {
	if len(s.queue) == 0 {
		return 0, false
	}
	front := s.queue[0]
	return front, front.AsUint64() == id
}

// undoTransaction collects every key the active transaction's writes
// touched, rolls each one's journal back to lastHeightBeforeTransaction, and
// reclaims the instruction-log entries the transaction created.
func (s *Store) undoTransaction(currentHeight basics.ChainHeight) error {
	targetHeight := s.lastHeightBeforeTransaction

	keys := make(map[string]basics.StoreKey)
	for _, instr := range s.executedInstructions {
		switch wi := instr.(type) {
		case instructions.SetManyInstruction:
			for _, t := range wi.Targets {
				keys[string(t.Key.Bytes())] = t.Key
			}
		case instructions.RevertManyInstruction:
			for _, t := range wi.Targets {
				keys[string(t.Key.Bytes())] = t.Key
			}
		case instructions.RevertAllInstruction:
			affected, err := s.vkv.ExtractAffectedKeys(targetHeight, currentHeight)
			if err != nil {
				return err
			}
			for _, k := range affected {
				keys[string(k.Bytes())] = k
			}
		}
	}

	for _, key := range keys {
		if err := s.vkv.InvalidateUpdateAfterHeight(key, targetHeight); err != nil {
			return err
		}
	}
	return s.vkv.InvalidateInstructionRecordsAfterHeight(targetHeight, currentHeight)
}
