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

// Package metrics exposes this engine's Prometheus gauges and counters, in
// the same package-level-variable style as erigon-lib/kv's DbSize/TxLimit
// block: one var per observable, registered at import time, read by
// whatever HTTP handler an embedder wires up (out of scope here).
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// VKVWrites counts SetMany, RevertMany and RevertAll calls that reached
	// internal/vkv, labeled by whether the write succeeded.
	VKVWrites = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "immuxdb_vkv_writes_total",
		Help: "Number of VKV write calls (SetMany, RevertMany, RevertAll), by outcome.",
	}, []string{"outcome"})

	// VKVReads counts GetOne/GetMany/GetJournal calls.
	VKVReads = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "immuxdb_vkv_reads_total",
		Help: "Number of VKV read calls, by kind.",
	}, []string{"kind"})

	// VKVReadLatency times a single VKV read instruction round trip.
	VKVReadLatency = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "immuxdb_vkv_read_seconds",
		Help:    "Latency of VKV read instructions.",
		Buckets: prometheus.DefBuckets,
	})

	// TKVTransactions counts transaction lifecycle events.
	TKVTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "immuxdb_tkv_transactions_total",
		Help: "Number of TKV transactions, by terminal state.",
	}, []string{"state"})

	// TKVQueueDepth gauges how many transactions are currently queued,
	// including the active head.
	TKVQueueDepth = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "immuxdb_tkv_queue_depth",
		Help: "Number of transactions currently queued in TKV.",
	})

	// ExecutorCommands counts every Command the executor dispatches,
	// labeled by its concrete type.
	ExecutorCommands = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "immuxdb_executor_commands_total",
		Help: "Number of commands executed, by command kind.",
	}, []string{"command"})

	// ExecutorCommandLatency times Executor.Execute end to end.
	ExecutorCommandLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "immuxdb_executor_command_seconds",
		Help:    "Latency of executed commands, by command kind.",
		Buckets: prometheus.DefBuckets,
	}, []string{"command"})
)
