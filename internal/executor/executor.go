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
	"github.com/prometheus/client_golang/prometheus"

	"github.com/immux/immuxdb/internal/commands"
	"github.com/immux/immuxdb/internal/logging"
	"github.com/immux/immuxdb/internal/metrics"
)

// Executor turns Commands into Outcomes against a CoreStore, translating
// each one into the Instruction(s) the store actually understands and
// maintaining the reverse index along the way.
type Executor struct {
	core   CoreStore
	logger *logging.Logger
}

// Option configures an Executor at construction.
type Option func(*Executor)

// WithLogger overrides the default root logger.
func WithLogger(l *logging.Logger) Option {
	return func(e *Executor) { e.logger = l }
}

// NewExecutor builds an Executor over core, the underlying VKV or TKV
// store that commands are ultimately carried out against.
func NewExecutor(core CoreStore, opts ...Option) *Executor {
	e := &Executor{
		core:   core,
		logger: logging.Root().Named("executor"),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Execute dispatches cmd to the handler for its concrete type.
func (e *Executor) Execute(cmd commands.Command) (commands.Outcome, error) {
	label := commandLabel(cmd)
	timer := prometheus.NewTimer(metrics.ExecutorCommandLatency.WithLabelValues(label))
	defer timer.ObserveDuration()
	metrics.ExecutorCommands.WithLabelValues(label).Inc()

	switch c := cmd.(type) {
	case commands.InsertCommand:
		return e.executeInsert(c)
	case commands.SelectCommand:
		return e.executeSelect(c)
	case commands.CreateIndexCommand:
		return e.executeCreateIndex(c)
	case commands.RevertManyCommand:
		return e.executeRevertMany(c)
	case commands.RevertAllCommand:
		return e.executeRevertAll(c)
	case commands.InspectCommand:
		return e.executeInspect(c)
	case commands.PickChainCommand:
		return e.executePickChain(c)
	case commands.NameChainCommand:
		return e.executeNameChain()
	default:
		return nil, ErrUnrecognizedCommand
	}
}

// commandLabel names cmd's concrete type for metrics, without requiring
// Command itself to grow a String method just for this.
func commandLabel(cmd commands.Command) string {
	switch cmd.(type) {
	case commands.InsertCommand:
		return "insert"
	case commands.SelectCommand:
		return "select"
	case commands.CreateIndexCommand:
		return "create_index"
	case commands.RevertManyCommand:
		return "revert_many"
	case commands.RevertAllCommand:
		return "revert_all"
	case commands.InspectCommand:
		return "inspect"
	case commands.PickChainCommand:
		return "pick_chain"
	case commands.NameChainCommand:
		return "name_chain"
	default:
		return "unrecognized"
	}
}
