//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"

	"github.com/mesh-intelligence/advent/internal/paths"
)

// Solve builds the binary and solves every registered day whose input file
// exists. Days without input are skipped.
func Solve() error {
	mg.Deps(Build)

	out, err := sh.Output(binaryPath(), "list")
	if err != nil {
		return fmt.Errorf("list days: %w", err)
	}

	inputDir, err := paths.ResolveInputDir("", "")
	if err != nil {
		return fmt.Errorf("resolve input dir: %w", err)
	}

	for field := range strings.FieldsSeq(out) {
		day, err := strconv.Atoi(field)
		if err != nil {
			return fmt.Errorf("unexpected list output %q", field)
		}
		path := paths.InputFile(inputDir, day)
		if _, err := os.Stat(path); os.IsNotExist(err) {
			fmt.Printf("day %d: no input at %s\n", day, path)
			continue
		}
		fmt.Printf("day %d\n", day)
		if err := sh.RunV(binaryPath(), "solve", field, path); err != nil {
			return fmt.Errorf("day %d: %w", day, err)
		}
	}
	return nil
}
