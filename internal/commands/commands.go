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

// Package commands is the typed external API the executor accepts and
// returns: every request a caller can make is a Command, every reply an
// Outcome. Go has no closed enum, so each family is an interface with an
// unexported marker method, mirroring the vocabulary internal/instructions
// already uses one layer down.
package commands

import (
	"strconv"

	"github.com/immux/immuxdb/internal/basics"
)

// Command is anything a caller can ask the executor to do.
type Command interface {
	isCommand()
}

// Outcome is anything the executor can hand back.
type Outcome interface {
	isOutcome()
}

// --- Insert ---

// InsertTarget is one unit to write: its id and the content to store there.
type InsertTarget struct {
	Id      basics.UnitId
	Content basics.UnitContent
}

// InsertCommand writes one or more units into a grouping.
type InsertCommand struct {
	Grouping basics.GroupingLabel
	Targets  []InsertTarget
}

// InsertOutcome reports how many units were written.
type InsertOutcome struct {
	Count int
}

func (InsertCommand) isCommand() {}
func (InsertOutcome) isOutcome() {}

// --- CreateIndex ---

// CreateIndexCommand registers name as an indexed property of grouping,
// backfilling the reverse index from every extant unit already there.
type CreateIndexCommand struct {
	Grouping basics.GroupingLabel
	Name     basics.PropertyName
}

type CreateIndexOutcome struct{}

func (CreateIndexCommand) isCommand() {}
func (CreateIndexOutcome) isOutcome() {}

// --- PickChain / NameChain ---

// PickChainCommand switches the active chain (namespace). The chain must
// already exist; see config.Config for how chains are provisioned.
type PickChainCommand struct {
	NewChainName basics.ChainName
}

// PickChainOutcome confirms the chain now active.
type PickChainOutcome struct {
	NewChainName basics.ChainName
}

func (PickChainCommand) isCommand() {}
func (PickChainOutcome) isOutcome() {}

// NameChainCommand asks which chain is currently active. It carries no
// data of its own.
type NameChainCommand struct{}

// NameChainOutcome reports the active chain's name.
type NameChainOutcome struct {
	ChainName basics.ChainName
}

func (NameChainCommand) isCommand() {}
func (NameChainOutcome) isOutcome() {}

// --- Select ---

// SelectCondition narrows a SelectCommand to the rows it should return.
type SelectCondition interface {
	isSelectCondition()
}

// UnconditionalMatch selects every live unit in the grouping.
type UnconditionalMatch struct{}

// SelectById selects the single unit with the given id, if any.
type SelectById struct {
	Id basics.UnitId
}

// SelectByJSCode would filter using an arbitrary predicate script. The
// source engine never implemented this condition either; it exists so the
// enum's shape is complete, and the executor always rejects it.
type SelectByJSCode struct {
	Code string
}

// SelectByNameProperty selects every unit whose JSON content has a field
// named Name equal to Property.
type SelectByNameProperty struct {
	Name     basics.PropertyName
	Property basics.UnitContent
}

func (UnconditionalMatch) isSelectCondition()    {}
func (SelectById) isSelectCondition()            {}
func (SelectByJSCode) isSelectCondition()        {}
func (SelectByNameProperty) isSelectCondition()  {}

// SelectCommand reads units out of a grouping matching Condition.
type SelectCommand struct {
	Grouping  basics.GroupingLabel
	Condition SelectCondition
}

// SelectOutcome carries the matching units.
type SelectOutcome struct {
	Units []basics.Unit
}

func (SelectCommand) isCommand() {}
func (SelectOutcome) isOutcome() {}

// --- RevertMany / RevertAll ---

// RevertTargetSpec names one unit and the height its content should be
// rolled back to.
type RevertTargetSpec struct {
	Specifier    basics.UnitSpecifier
	TargetHeight basics.ChainHeight
}

// RevertManyCommand rolls a set of units back to independent target
// heights, repairing any reverse index entries those units fed.
type RevertManyCommand struct {
	Specs []RevertTargetSpec
}

type RevertOutcome struct{}

func (RevertManyCommand) isCommand() {}
func (RevertOutcome) isOutcome()     {}

// RevertAllCommand rolls every key in the active chain back to
// TargetHeight. It does not repair the reverse index: see
// internal/executor's RevertAll doc comment.
type RevertAllCommand struct {
	TargetHeight basics.ChainHeight
}

type RevertAllOutcome struct{}

func (RevertAllCommand) isCommand() {}
func (RevertAllOutcome) isOutcome() {}

// --- Inspect ---

// InspectCommand asks for the full update history of a single unit.
type InspectCommand struct {
	Specifier basics.UnitSpecifier
}

// Inspection is one entry in a unit's history: the height it was touched
// at, and the content live immediately after, or nil if that update was a
// deletion.
type Inspection struct {
	Height  basics.ChainHeight
	Content *basics.UnitContent
}

// String renders an inspection as "height|content", matching the source
// engine's plain-text inspect output; a deleted entry's content half is
// empty.
func (i Inspection) String() string {
	body := ""
	if i.Content != nil {
		if s, ok := i.Content.AsString(); ok {
			body = s
		} else if b, ok := i.Content.AsBool(); ok {
			body = strconv.FormatBool(b)
		} else if f, ok := i.Content.AsFloat64(); ok {
			body = strconv.FormatFloat(f, 'g', -1, 64)
		}
	}
	return strconv.FormatUint(i.Height.AsUint64(), 10) + "|" + body
}

// InspectOutcome carries the unit's full history, oldest first.
type InspectOutcome struct {
	Inspections []Inspection
}

func (InspectCommand) isCommand() {}
func (InspectOutcome) isOutcome() {}
