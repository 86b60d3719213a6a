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

package executor

import (
	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/commands"
	"github.com/immux/immuxdb/internal/instructions"
	"github.com/immux/immuxdb/internal/kv"
)

// executePickChain switches the store's active namespace. The chain must
// already exist; provisioning a brand-new chain name is config's job, done
// once at startup rather than through the command surface.
func (e *Executor) executePickChain(cmd commands.PickChainCommand) (commands.Outcome, error) {
	answer, err := e.core.Execute(instructions.SwitchNamespaceInstruction{
		NewNamespace: kv.Namespace(cmd.NewChainName.String()),
	})
	if err != nil {
		return nil, err
	}
	ok, isOk := answer.(instructions.SwitchNamespaceOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}
	return commands.PickChainOutcome{NewChainName: basics.NewChainName(string(ok.NewNamespace))}, nil
}

// executeNameChain reports whichever namespace is currently active.
func (e *Executor) executeNameChain() (commands.Outcome, error) {
	answer, err := e.core.Execute(instructions.ReadNamespaceInstruction{})
	if err != nil {
		return nil, err
	}
	ok, isOk := answer.(instructions.ReadNamespaceOkAnswer)
	if !isOk {
		return nil, ErrUnexpectedAnswer
	}
	return commands.NameChainOutcome{ChainName: basics.NewChainName(string(ok.Namespace))}, nil
}
