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

// Package config loads an ImmuxDB instance's settings from TOML and opens
// the storage engine they describe. It also owns the one piece of state
// that must survive a process restart without drifting: the data root's
// chain name and the engine version that first wrote to it.
package config

import (
	"os"

	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/kv"
)

// Engine names one of the physical KV backends Config can select.
type Engine string

const (
	EngineMemory Engine = "memory"
	EngineBadger Engine = "badger"
)

// Config is the settings an embedder persists across restarts, per spec §6's
// Configuration list: engine choice, data root, endpoint address, and
// default chain name.
type Config struct {
	Engine           Engine `toml:"engine"`
	DataRoot         string `toml:"data_root"`
	DefaultChainName string `toml:"default_chain_name"`
	ListenAddr       string `toml:"listen_addr"`
}

// Default returns the configuration used when no file is given: an
// in-memory engine under the default chain name, with ListenAddr set to
// 127.0.0.1:8080 (nothing in this module opens a listener on it).
func Default() Config {
	return Config{
		Engine:           EngineMemory,
		DefaultChainName: basics.DefaultChainName,
		ListenAddr:       "127.0.0.1:8080",
	}
}

// ErrUnknownEngine is returned when Engine names something other than
// "memory" or "badger".
var ErrUnknownEngine = errors.New("config: unknown engine")

// ErrChainNameMismatch is returned by EnsureChainInfo when the data root was
// previously stamped with a different chain name than the one now
// configured — re-opening it would silently operate on the wrong chain.
var ErrChainNameMismatch = errors.New("config: data root was initialized under a different chain name")

// Load reads and parses a TOML config file at path, applying Default()'s
// values for any field the file leaves unset.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "config: read file")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "config: parse toml")
	}
	if err := basics.ValidateChainName(cfg.DefaultChainName); err != nil {
		return Config{}, errors.Wrap(err, "config: default_chain_name")
	}
	switch cfg.Engine {
	case EngineMemory, EngineBadger:
	default:
		return Config{}, errors.Wrapf(ErrUnknownEngine, "%q", cfg.Engine)
	}
	return cfg, nil
}

// OpenStore builds the kv.Store cfg describes: an in-memory engine for
// EngineMemory, or a Badger-backed one rooted at cfg.DataRoot for
// EngineBadger.
func (c Config) OpenStore() (kv.Store, error) {
	switch c.Engine {
	case EngineBadger:
		store, err := kv.OpenBadgerStore(c.DataRoot, kv.DefaultSigilCfg)
		if err != nil {
			return nil, errors.Wrap(err, "config: open badger store")
		}
		return store, nil
	case EngineMemory, "":
		return kv.NewMemStore(), nil
	default:
		return nil, errors.Wrapf(ErrUnknownEngine, "%q", c.Engine)
	}
}
