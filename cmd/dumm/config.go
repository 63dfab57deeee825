/*
 * config.go, part of dumm.
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
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	dumm "dumm"
)

// fileConfig is the optional TOML configuration file's shape. Every
// field is a pointer or zero-valued sentinel so "not present in the
// file" is distinguishable from "explicitly set to the zero value";
// unset fields fall back to the library's own defaults.
type fileConfig struct {
	CombiningRule *string  `toml:"combining_rule"`
	Vdw14         *float64 `toml:"vdw_14"`
	Vdw15         *float64 `toml:"vdw_15"`
	Coulomb14     *float64 `toml:"coulomb_14"`
	Coulomb15     *float64 `toml:"coulomb_15"`
	DielectricSolute  *float64 `toml:"dielectric_solute"`
	DielectricSolvent *float64 `toml:"dielectric_solvent"`
	IncludeAce        *bool    `toml:"include_ace"`
}

// loadConfig reads path (if non-empty) and overlays it onto the
// library's defaults. An empty path is not an error: every CLI command
// runs fine on defaults alone.
func loadConfig(path string) (dumm.CombiningRule, dumm.ScaleFactors, dumm.GbsaParameters, error) {
	rule := dumm.WaldmanHagler
	scales := dumm.DefaultScaleFactors()
	gb := dumm.DefaultGbsaParameters()

	if path == "" {
		return rule, scales, gb, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return rule, scales, gb, fmt.Errorf("reading config %q: %w", path, err)
	}
	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return rule, scales, gb, fmt.Errorf("parsing config %q: %w", path, err)
	}

	if fc.CombiningRule != nil {
		r, err := parseCombiningRule(*fc.CombiningRule)
		if err != nil {
			return rule, scales, gb, err
		}
		rule = r
	}
	if fc.Vdw14 != nil {
		scales.Vdw14 = *fc.Vdw14
	}
	if fc.Vdw15 != nil {
		scales.Vdw15 = *fc.Vdw15
	}
	if fc.Coulomb14 != nil {
		scales.Coulomb14 = *fc.Coulomb14
	}
	if fc.Coulomb15 != nil {
		scales.Coulomb15 = *fc.Coulomb15
	}
	if fc.DielectricSolute != nil {
		gb.DielectricSolute = *fc.DielectricSolute
	}
	if fc.DielectricSolvent != nil {
		gb.DielectricSolvent = *fc.DielectricSolvent
	}
	if fc.IncludeAce != nil {
		gb.IncludeAce = *fc.IncludeAce
	}
	return rule, scales, gb, nil
}

func parseCombiningRule(name string) (dumm.CombiningRule, error) {
	switch name {
	case "lorentz-berthelot":
		return dumm.LorentzBerthelot, nil
	case "jorgensen-opls":
		return dumm.JorgensenOPLS, nil
	case "halgren-hhg":
		return dumm.HalgrenHHG, nil
	case "waldman-hagler":
		return dumm.WaldmanHagler, nil
	case "kong":
		return dumm.Kong, nil
	default:
		return 0, fmt.Errorf("unknown combining_rule %q", name)
	}
}
