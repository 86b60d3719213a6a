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

package vkv

import (
	json "github.com/goccy/go-json"
	"github.com/pkg/errors"

	"github.com/immux/immuxdb/internal/basics"
	"github.com/immux/immuxdb/internal/instructions"
)

// recordDTO is the on-disk shape of an InstructionRecord. Unlike the
// wire-mandated codecs in internal/basics, nothing outside this store ever
// reads HeightToInstructionRecord values directly, so there is no exact
// byte layout to honor here: a tagged JSON document keeps the three
// DataWriteInstruction variants and the RevertAll-only AffectedKeys field
// readable straight off disk, which is valuable when debugging a chain's
// history by hand.
type recordDTO struct {
	Kind            string          `json:"kind"`
	SetTargets      []setTargetDTO  `json:"set_targets,omitempty"`
	RevertTargets   []revertDTO     `json:"revert_targets,omitempty"`
	RevertAllTarget *uint64         `json:"revert_all_target,omitempty"`
	Major           uint16          `json:"major"`
	Minor           uint16          `json:"minor"`
	Patch           uint16          `json:"patch"`
	TimestampUnix   int64           `json:"timestamp_unix"`
	AffectedKeys    [][]byte        `json:"affected_keys,omitempty"`
}

type setTargetDTO struct {
	Key   []byte `json:"key"`
	Value []byte `json:"value"`
}

type revertDTO struct {
	Key    []byte `json:"key"`
	Height uint64 `json:"height"`
}

const (
	recordKindSetMany    = "set_many"
	recordKindRevertMany = "revert_many"
	recordKindRevertAll  = "revert_all"
)

func encodeInstructionRecord(rec instructions.InstructionRecord) ([]byte, error) {
	dto := recordDTO{
		Major:         rec.Version.Major,
		Minor:         rec.Version.Minor,
		Patch:         rec.Version.Patch,
		TimestampUnix: rec.TimestampUnix,
	}
	for _, k := range rec.AffectedKeys {
		dto.AffectedKeys = append(dto.AffectedKeys, k.Bytes())
	}
	switch instr := rec.Instruction.(type) {
	case instructions.SetManyInstruction:
		dto.Kind = recordKindSetMany
		for _, t := range instr.Targets {
			dto.SetTargets = append(dto.SetTargets, setTargetDTO{Key: t.Key.Bytes(), Value: t.Value.Marshal()})
		}
	case instructions.RevertManyInstruction:
		dto.Kind = recordKindRevertMany
		for _, t := range instr.Targets {
			dto.RevertTargets = append(dto.RevertTargets, revertDTO{Key: t.Key.Bytes(), Height: t.Height.AsUint64()})
		}
	case instructions.RevertAllInstruction:
		dto.Kind = recordKindRevertAll
		h := instr.TargetHeight.AsUint64()
		dto.RevertAllTarget = &h
	default:
		return nil, errors.New("vkv: unsupported instruction kind for record encoding")
	}
	return json.Marshal(dto)
}

func decodeInstructionRecord(data []byte) (instructions.InstructionRecord, error) {
	var dto recordDTO
	if err := json.Unmarshal(data, &dto); err != nil {
		return instructions.InstructionRecord{}, errors.Wrap(err, "vkv: decode instruction record")
	}
	rec := instructions.InstructionRecord{
		Version:       basics.DBVersion{Major: dto.Major, Minor: dto.Minor, Patch: dto.Patch},
		TimestampUnix: dto.TimestampUnix,
	}
	for _, raw := range dto.AffectedKeys {
		key, err := basics.ParseStoreKey(raw)
		if err != nil {
			return instructions.InstructionRecord{}, err
		}
		rec.AffectedKeys = append(rec.AffectedKeys, basics.NewStoreKey(key))
	}
	switch dto.Kind {
	case recordKindSetMany:
		var targets []instructions.SetTarget
		for _, t := range dto.SetTargets {
			spec, err := basics.ParseStoreKey(t.Key)
			if err != nil {
				return instructions.InstructionRecord{}, err
			}
			value, _, err := basics.ParseStoreValue(t.Value)
			if err != nil {
				return instructions.InstructionRecord{}, err
			}
			targets = append(targets, instructions.SetTarget{Key: basics.NewStoreKey(spec), Value: value})
		}
		rec.Instruction = instructions.SetManyInstruction{Targets: targets}
	case recordKindRevertMany:
		var targets []instructions.RevertTarget
		for _, t := range dto.RevertTargets {
			spec, err := basics.ParseStoreKey(t.Key)
			if err != nil {
				return instructions.InstructionRecord{}, err
			}
			targets = append(targets, instructions.RevertTarget{
				Key:    basics.NewStoreKey(spec),
				Height: basics.NewChainHeight(t.Height),
			})
		}
		rec.Instruction = instructions.RevertManyInstruction{Targets: targets}
	case recordKindRevertAll:
		if dto.RevertAllTarget == nil {
			return instructions.InstructionRecord{}, errors.New("vkv: revert_all record missing target height")
		}
		rec.Instruction = instructions.RevertAllInstruction{TargetHeight: basics.NewChainHeight(*dto.RevertAllTarget)}
	default:
		return instructions.InstructionRecord{}, errors.Errorf("vkv: unknown instruction record kind %q", dto.Kind)
	}
	return rec, nil
}
