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

package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/immux/immuxdb/config"
	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/executor"
	"github.com/immux/immuxdb/internal/kv"
	"github.com/immux/immuxdb/internal/logging"
	"github.com/immux/immuxdb/internal/vkv"
)

// rootFlags are the connection/config flags shared by every subcommand,
// built as a standalone pflag.FlagSet and merged into the root command so
// cobra and pflag are both doing real work rather than cobra alone
// shadowing its vendored pflag copy.
var rootFlags = pflag.NewFlagSet("immuxdb", pflag.ContinueOnError)

var (
	flagConfigPath = rootFlags.StringP("config", "c", "", "path to a TOML config file")
	flagDataRoot   = rootFlags.String("data-root", "", "badger data directory (overrides config)")
	flagEngine     = rootFlags.String("engine", "", "memory|badger (overrides config)")
	flagChain      = rootFlags.String("chain", "", "chain name to operate on (overrides config)")
	flagLogLevel   = rootFlags.String("log-level", "info", "debug|info|warn|error")
)

// app bundles the opened store and executor a subcommand's RunE needs.
// Built once in the root command's PersistentPreRunE.
type app struct {
	cfg    config.Config
	store  kv.Store
	vkv    *vkv.Store
	exec   *executor.Executor
	logger *logging.Logger
}

var current *app

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "immuxdb",
		Short:         "ImmuxDB one-shot command-line interface",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp()
			if err != nil {
				return err
			}
			current = a
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if current == nil {
				return nil
			}
			defer func() { current = nil }()
			_ = current.logger.Sync()
			return current.store.Close()
		},
	}
	root.PersistentFlags().AddFlagSet(rootFlags)
	root.AddCommand(
		newInsertCmd(),
		newSelectCmd(),
		newCreateIndexCmd(),
		newRevertManyCmd(),
		newRevertAllCmd(),
		newInspectCmd(),
		newPickChainCmd(),
		newNameChainCmd(),
		newInfoCmd(),
	)
	return root
}

func openApp() (*app, error) {
	cfg := config.Default()
	if *flagConfigPath != "" {
		loaded, err := config.Load(*flagConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if *flagDataRoot != "" {
		cfg.DataRoot = *flagDataRoot
	}
	if *flagEngine != "" {
		cfg.Engine = config.Engine(*flagEngine)
	}
	if *flagChain != "" {
		cfg.DefaultChainName = *flagChain
	}
	if err := basics.ValidateChainName(cfg.DefaultChainName); err != nil {
		return nil, err
	}

	logger := logging.New(*flagLogLevel).Named("cmd")

	store, err := cfg.OpenStore()
	if err != nil {
		return nil, errors.Wrap(err, "open store")
	}

	chain := basics.NewChainName(cfg.DefaultChainName)
	if err := store.CreateNamespace(kv.Namespace(chain.String())); err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "provision chain namespace")
	}
	if err := store.SwitchNamespace(kv.Namespace(chain.String())); err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "switch to chain namespace")
	}
	if err := config.EnsureChainInfo(store, chain); err != nil {
		_ = store.Close()
		return nil, err
	}

	vkvStore, err := vkv.NewStore(store, 1024, vkv.WithLogger(logger))
	if err != nil {
		_ = store.Close()
		return nil, errors.Wrap(err, "build vkv store")
	}

	exec := executor.NewExecutor(vkvStore, executor.WithLogger(logger))

	return &app{cfg: cfg, store: store, vkv: vkvStore, exec: exec, logger: logger}, nil
}
