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
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/commands"
)

func parseUnitID(s string) (basics.UnitId, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return basics.UnitId{}, errors.Wrapf(err, "id %q", s)
	}
	return basics.NewUnitId(v), nil
}

func parseHeight(s string) (basics.ChainHeight, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return basics.ChainHeight{}, errors.Wrapf(err, "height %q", s)
	}
	return basics.NewChainHeight(v), nil
}

// parseScalarContent parses a CLI-supplied value into the indexable JSON
// scalar kinds a NameProperty condition or a property match works over:
// null, a boolean, a number, or (falling through) a plain string.
func parseScalarContent(s string) basics.UnitContent {
	switch s {
	case "null":
		return basics.NilContent()
	case "true":
		return basics.BoolContent(true)
	case "false":
		return basics.BoolContent(false)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return basics.Float64Content(f)
	}
	return basics.StringContent(s)
}

func printOutcome(outcome commands.Outcome) {
	switch o := outcome.(type) {
	case commands.InsertOutcome:
		fmt.Printf("inserted %d unit(s)\n", o.Count)
	case commands.SelectOutcome:
		for _, u := range o.Units {
			fmt.Println(formatUnit(u))
		}
		fmt.Printf("%d unit(s)\n", len(o.Units))
	case commands.CreateIndexOutcome:
		fmt.Println("index created")
	case commands.RevertOutcome:
		fmt.Println("reverted")
	case commands.RevertAllOutcome:
		fmt.Println("reverted all")
	case commands.InspectOutcome:
		for _, insp := range o.Inspections {
			fmt.Println(insp.String())
		}
	case commands.PickChainOutcome:
		fmt.Println(o.NewChainName.String())
	case commands.NameChainOutcome:
		fmt.Println(o.ChainName.String())
	default:
		fmt.Printf("%+v\n", outcome)
	}
}

func formatUnit(u basics.Unit) string {
	if s, ok := u.Content.AsString(); ok {
		return s
	}
	if b, ok := u.Content.AsBool(); ok {
		return strconv.FormatBool(b)
	}
	if f, ok := u.Content.AsFloat64(); ok {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	return "<nil>"
}

func newInsertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "insert <grouping> <id> <json-content>",
		Short: "Insert a unit's JSON content under grouping/id",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUnitID(args[1])
			if err != nil {
				return err
			}
			if !json.Valid([]byte(args[2])) {
				return errors.Errorf("content is not valid JSON: %s", args[2])
			}
			outcome, err := current.exec.Execute(commands.InsertCommand{
				Grouping: basics.NewGroupingLabel([]byte(args[0])),
				Targets: []commands.InsertTarget{
					{Id: id, Content: basics.JSONStringContent(args[2])},
				},
			})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newSelectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "select",
		Short: "Select units (unconditional, by id, or by name/property)",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "all <grouping>",
			Short: "Select every live unit in a grouping",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				outcome, err := current.exec.Execute(commands.SelectCommand{
					Grouping:  basics.NewGroupingLabel([]byte(args[0])),
					Condition: commands.UnconditionalMatch{},
				})
				if err != nil {
					return err
				}
				printOutcome(outcome)
				return nil
			},
		},
		&cobra.Command{
			Use:   "id <grouping> <id>",
			Short: "Select a single unit by id",
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseUnitID(args[1])
				if err != nil {
					return err
				}
				outcome, err := current.exec.Execute(commands.SelectCommand{
					Grouping:  basics.NewGroupingLabel([]byte(args[0])),
					Condition: commands.SelectById{Id: id},
				})
				if err != nil {
					return err
				}
				printOutcome(outcome)
				return nil
			},
		},
		&cobra.Command{
			Use:   "name-property <grouping> <name> <value>",
			Short: "Select units whose JSON content has name == value",
			Args:  cobra.ExactArgs(3),
			RunE: func(cmd *cobra.Command, args []string) error {
				outcome, err := current.exec.Execute(commands.SelectCommand{
					Grouping: basics.NewGroupingLabel([]byte(args[0])),
					Condition: commands.SelectByNameProperty{
						Name:     basics.NewPropertyName(args[1]),
						Property: parseScalarContent(args[2]),
					},
				})
				if err != nil {
					return err
				}
				printOutcome(outcome)
				return nil
			},
		},
	)
	return cmd
}

func newCreateIndexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create-index <grouping> <name>",
		Short: "Index a JSON property for a grouping",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := current.exec.Execute(commands.CreateIndexCommand{
				Grouping: basics.NewGroupingLabel([]byte(args[0])),
				Name:     basics.NewPropertyName(args[1]),
			})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newRevertManyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert-many <grouping:id:height> [more...]",
		Short: "Revert one or more units to a target height each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			specs := make([]commands.RevertTargetSpec, 0, len(args))
			for _, a := range args {
				parts := strings.SplitN(a, ":", 3)
				if len(parts) != 3 {
					return errors.Errorf("expected grouping:id:height, got %q", a)
				}
				id, err := parseUnitID(parts[1])
				if err != nil {
					return err
				}
				height, err := parseHeight(parts[2])
				if err != nil {
					return err
				}
				specs = append(specs, commands.RevertTargetSpec{
					Specifier:    basics.NewUnitSpecifier(basics.NewGroupingLabel([]byte(parts[0])), id),
					TargetHeight: height,
				})
			}
			outcome, err := current.exec.Execute(commands.RevertManyCommand{Specs: specs})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newRevertAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "revert-all <height>",
		Short: "Revert the active chain to a target height",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			height, err := parseHeight(args[0])
			if err != nil {
				return err
			}
			outcome, err := current.exec.Execute(commands.RevertAllCommand{TargetHeight: height})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <grouping> <id>",
		Short: "Print a unit's full update history",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseUnitID(args[1])
			if err != nil {
				return err
			}
			outcome, err := current.exec.Execute(commands.InspectCommand{
				Specifier: basics.NewUnitSpecifier(basics.NewGroupingLabel([]byte(args[0])), id),
			})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newPickChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pick-chain <name>",
		Short: "Switch the active chain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := basics.ValidateChainName(args[0]); err != nil {
				return err
			}
			outcome, err := current.exec.Execute(commands.PickChainCommand{
				NewChainName: basics.NewChainName(args[0]),
			})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newNameChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name-chain",
		Short: "Print the active chain's name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outcome, err := current.exec.Execute(commands.NameChainCommand{})
			if err != nil {
				return err
			}
			printOutcome(outcome)
			return nil
		},
	}
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print engine version and the active chain",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("immuxdb", basics.CurrentDBVersion.String())
			fmt.Println("engine", current.cfg.Engine)
			fmt.Println("chain", current.cfg.DefaultChainName)
			return nil
		},
	}
}
