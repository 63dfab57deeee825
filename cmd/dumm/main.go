/*
 * main.go, part of dumm.
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

// Command dumm is a thin driver over the dumm library: it loads a
// parameter snapshot and a set of body transforms from files, realizes
// the subsystem, and reports the resulting energy and per-body forces.
// It carries no force-field logic of its own.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, "dumm: failed to initialize logger:", err)
		os.Exit(1)
	}
	defer logger.Sync()

	root := newRootCommand(logger)
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(logger *zap.Logger) *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "dumm",
		Short: "Evaluate a DuMM-style molecular-mechanics force field",
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML configuration file")

	root.AddCommand(newRealizeCommand(logger, &configPath))
	return root
}
