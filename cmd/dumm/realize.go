/*
 * realize.go, part of dumm.
 *
 * Copyright 2024 The dumm authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	dumm "dumm"
	v3 "dumm/v3"
)

// bodyTransform is the wire shape for one entry of the transforms file:
// a translation P and an optional rotation given as three row vectors,
// defaulting to the identity rotation when omitted.
type bodyTransform struct {
	P [3]float64   `json:"p"`
	R *[3][3]float64 `json:"r,omitempty"`
}

func newRealizeCommand(logger *zap.Logger, configPath *string) *cobra.Command {
	var snapshotPath, transformsPath string

	cmd := &cobra.Command{
		Use:   "realize",
		Short: "Load a parameter snapshot and body transforms, then report energy and forces",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRealize(logger, *configPath, snapshotPath, transformsPath)
		},
	}
	cmd.Flags().StringVar(&snapshotPath, "snapshot", "", "path to a JSON parameter snapshot (required)")
	cmd.Flags().StringVar(&transformsPath, "transforms", "", "path to a JSON map of host body index to ground transform (required)")
	cmd.MarkFlagRequired("snapshot")
	cmd.MarkFlagRequired("transforms")
	return cmd
}

func runRealize(logger *zap.Logger, configPath, snapshotPath, transformsPath string) error {
	rule, scales, gb, err := loadConfig(configPath)
	if err != nil {
		logger.Error("failed to load configuration", zap.Error(err))
		return err
	}

	snap, err := readSnapshot(snapshotPath)
	if err != nil {
		logger.Error("failed to read snapshot", zap.String("path", snapshotPath), zap.Error(err))
		return err
	}
	snap.CombiningRule = rule
	snap.Scales = scales
	snap.Gbsa = gb

	s := dumm.NewSubsystem()
	if err := s.Import(snap); err != nil {
		logger.Error("failed to import snapshot", zap.Error(err))
		return err
	}
	logger.Info("imported snapshot",
		zap.Int("atomClasses", len(snap.AtomClasses)),
		zap.Int("atoms", len(snap.Atoms)),
		zap.Int("bonds", len(snap.Bonds)),
	)

	if err := s.RealizeTopology(); err != nil {
		logger.Error("failed to realize topology", zap.Error(err))
		return err
	}

	transforms, err := readTransforms(transformsPath)
	if err != nil {
		logger.Error("failed to read transforms", zap.String("path", transformsPath), zap.Error(err))
		return err
	}

	energy, forces, err := s.RealizeDynamics(transforms)
	if err != nil {
		logger.Error("failed to realize dynamics", zap.Error(err))
		return err
	}
	logger.Info("realized dynamics", zap.Float64("energy", energy), zap.Int("bodies", len(forces)))

	return printResult(energy, forces)
}

func readSnapshot(path string) (dumm.Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return dumm.Snapshot{}, err
	}
	defer f.Close()
	return dumm.ReadJSON(f)
}

func readTransforms(path string) (map[int]v3.Transform, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var raw map[string]bodyTransform
	if err := json.NewDecoder(f).Decode(&raw); err != nil {
		return nil, err
	}

	out := make(map[int]v3.Transform, len(raw))
	for key, bt := range raw {
		idx, err := strconv.Atoi(key)
		if err != nil {
			return nil, fmt.Errorf("transforms file: body key %q is not an integer", key)
		}
		p := v3.New(bt.P[0], bt.P[1], bt.P[2])
		rot := v3.IdentityRotation()
		if bt.R != nil {
			rows := *bt.R
			rot = v3.RotationFromRows(
				v3.New(rows[0][0], rows[0][1], rows[0][2]),
				v3.New(rows[1][0], rows[1][1], rows[1][2]),
				v3.New(rows[2][0], rows[2][1], rows[2][2]),
			)
		}
		out[idx] = v3.TransformFromRotationAndOffset(rot, p)
	}
	return out, nil
}

type forceReport struct {
	Body   int        `json:"body"`
	Force  [3]float64 `json:"force"`
	Torque [3]float64 `json:"torque"`
}

type realizeReport struct {
	Energy float64       `json:"energy"`
	Forces []forceReport `json:"forces"`
}

func printResult(energy float64, forces map[int]v3.Spatial) error {
	bodies := make([]int, 0, len(forces))
	for body := range forces {
		bodies = append(bodies, body)
	}
	sort.Ints(bodies)

	report := realizeReport{Energy: energy}
	for _, body := range bodies {
		sp := forces[body]
		report.Forces = append(report.Forces, forceReport{
			Body:   body,
			Force:  [3]float64{sp.Force.X(), sp.Force.Y(), sp.Force.Z()},
			Torque: [3]float64{sp.Torque.X(), sp.Torque.Y(), sp.Torque.Z()},
		})
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
