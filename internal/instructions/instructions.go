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

// Package instructions holds the VKV layer's request/response vocabulary.
// Every request the executor issues to the versioned store, and every
// reply it gets back, is one of the closed sets of types declared here.
// Go has no closed enum, so each family is modeled as an interface with an
// unexported marker method; dispatch happens through type switches at the
// VKV and TKV boundaries.
package instructions

import (
	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/kv"
)

// Instruction is anything the VKV layer can execute.
type Instruction interface {
	isInstruction()
}

// Answer is anything the VKV layer can return from Execute.
type Answer interface {
	isAnswer()
}

// --- DB system instructions: namespace switching, independent of height ---

type SwitchNamespaceInstruction struct {
	NewNamespace kv.Namespace
}

type ReadNamespaceInstruction struct{}

func (SwitchNamespaceInstruction) isInstruction() {}
func (ReadNamespaceInstruction) isInstruction()   {}

// DBSystemInstruction narrows Instruction to the namespace-control family.
type DBSystemInstruction interface {
	Instruction
	isDBSystemInstruction()
}

func (SwitchNamespaceInstruction) isDBSystemInstruction() {}
func (ReadNamespaceInstruction) isDBSystemInstruction()   {}

type SwitchNamespaceOkAnswer struct {
	NewNamespace kv.Namespace
}

type ReadNamespaceOkAnswer struct {
	Namespace kv.Namespace
}

func (SwitchNamespaceOkAnswer) isAnswer() {}
func (ReadNamespaceOkAnswer) isAnswer()   {}

// --- Data read instructions ---

// GetManyTargets selects either an explicit key list or a key prefix for a
// GetMany read. Exactly one of Keys or Prefix is meaningful, chosen by
// HasPrefix — this mirrors the source engine's GetManyTargetSpec enum,
// which Go has no closed-union equivalent for short of a second interface
// that would only ever have two implementations.
type GetManyTargets struct {
	Keys      []basics.StoreKey
	Prefix    []byte
	HasPrefix bool
}

// GetManyInstruction fetches several keys (or a whole grouping prefix) at
// once, optionally as of a past height.
type GetManyInstruction struct {
	Targets GetManyTargets
	Height  *basics.ChainHeight
}

// GetOneInstruction fetches a single key, optionally as of a past height.
type GetOneInstruction struct {
	Key    basics.StoreKey
	Height *basics.ChainHeight
}

// GetJournalInstruction fetches the full update history for a key.
type GetJournalInstruction struct {
	Key basics.StoreKey
}

func (GetManyInstruction) isInstruction()    {}
func (GetOneInstruction) isInstruction()     {}
func (GetJournalInstruction) isInstruction() {}

// DataReadInstruction narrows Instruction to the read family.
type DataReadInstruction interface {
	Instruction
	isDataReadInstruction()
}

func (GetManyInstruction) isDataReadInstruction()    {}
func (GetOneInstruction) isDataReadInstruction()     {}
func (GetJournalInstruction) isDataReadInstruction() {}

// KVPair pairs a StoreKey with the StoreValue found there, the unit of
// exchange for multi-key reads.
type KVPair struct {
	Key   basics.StoreKey
	Value basics.StoreValue
}

type GetManyOkAnswer struct {
	Data []KVPair
}

type GetOneOkAnswer struct {
	Value basics.StoreValue
}

type GetJournalOkAnswer struct {
	Journal basics.UnitJournal
}

func (GetManyOkAnswer) isAnswer()   {}
func (GetOneOkAnswer) isAnswer()    {}
func (GetJournalOkAnswer) isAnswer() {}

// --- Data write instructions ---

// SetTarget is one key/value pair written by a SetMany instruction.
type SetTarget struct {
	Key   basics.StoreKey
	Value basics.StoreValue
}

type SetManyInstruction struct {
	Targets []SetTarget
}

// RevertTarget names a key and the height it should be reverted to.
type RevertTarget struct {
	Key    basics.StoreKey
	Height basics.ChainHeight
}

type RevertManyInstruction struct {
	Targets []RevertTarget
}

type RevertAllInstruction struct {
	TargetHeight basics.ChainHeight
}

func (SetManyInstruction) isInstruction()    {}
func (RevertManyInstruction) isInstruction() {}
func (RevertAllInstruction) isInstruction()  {}

// DataWriteInstruction narrows Instruction to the write family.
type DataWriteInstruction interface {
	Instruction
	isDataWriteInstruction()
}

func (SetManyInstruction) isDataWriteInstruction()    {}
func (RevertManyInstruction) isDataWriteInstruction() {}
func (RevertAllInstruction) isDataWriteInstruction()  {}

type SetOkAnswer struct {
	Count int
}

type RevertOkAnswer struct{}

type RevertAllOkAnswer struct {
	RevertedKeys []basics.StoreKey
}

func (SetOkAnswer) isAnswer()      {}
func (RevertOkAnswer) isAnswer()   {}
func (RevertAllOkAnswer) isAnswer() {}

// --- Transaction meta instructions, handled by TKV before VKV ever sees them ---

type StartTransactionInstruction struct{}

type CommitTransactionInstruction struct {
	TransactionId uint64
}

type AbortTransactionInstruction struct {
	TransactionId uint64
}

func (StartTransactionInstruction) isInstruction()  {}
func (CommitTransactionInstruction) isInstruction() {}
func (AbortTransactionInstruction) isInstruction()  {}

// TransactionMetaInstruction narrows Instruction to the transaction
// lifecycle family.
type TransactionMetaInstruction interface {
	Instruction
	isTransactionMetaInstruction()
}

func (StartTransactionInstruction) isTransactionMetaInstruction()  {}
func (CommitTransactionInstruction) isTransactionMetaInstruction() {}
func (AbortTransactionInstruction) isTransactionMetaInstruction()  {}

// TransactionStartedAnswer reports a transaction that became the active one
// immediately, because the queue was empty.
type TransactionStartedAnswer struct {
	TransactionId uint64
}

// TransactionAppendedAnswer reports a transaction that was queued behind an
// already-active one.
type TransactionAppendedAnswer struct {
	TransactionId uint64
}

type TransactionCommittedAnswer struct {
	CommittedTransactionId  uint64
	NextActiveTransactionId *uint64
}

type TransactionAbortedAnswer struct {
	TransactionId uint64
}

func (TransactionStartedAnswer) isAnswer()   {}
func (TransactionAppendedAnswer) isAnswer()  {}
func (TransactionCommittedAnswer) isAnswer() {}
func (TransactionAbortedAnswer) isAnswer()   {}

// TransactionalDataInstruction wraps a DataInstruction (read or write) that
// must execute inside an already-started transaction, the TKV-layer analog
// of VKV's DataReadInstruction/DataWriteInstruction.
type TransactionalDataInstruction struct {
	TransactionId uint64
	Inner         Instruction
}

func (TransactionalDataInstruction) isInstruction() {}

// TransactionalDataAnswer wraps the VKV answer produced while executing a
// TransactionalDataInstruction, tagged with the transaction it ran under.
type TransactionalDataAnswer struct {
	TransactionId uint64
	Inner         Answer
}

func (TransactionalDataAnswer) isAnswer() {}
