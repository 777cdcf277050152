//go:build mage

// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package main provides build targets for the advent project using Mage.
//
// Usage:
//
//	mage build       Compile the advent binary to bin/
//	mage test:all    Run every test
//	mage test:unit   Run tests with -short
//	mage test:race   Run tests under the race detector
//	mage lint        Run golangci-lint
//	mage solve       Solve every day that has an input file
//	mage stats       Print Go LOC
//	mage clean       Remove build artifacts
//	mage install     Install advent to GOPATH/bin
package main

import (
	"os"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binGo      = "go"
	binaryName = "advent"
	binaryDir  = "bin"
	cmdDir     = "./cmd/advent"
)

// Build compiles the advent binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	return sh.RunV(binGo, "build", "-v", "-o", binaryPath(), cmdDir)
}

// Clean removes build artifacts.
func Clean() error {
	if err := os.RemoveAll(binaryDir); err != nil {
		return err
	}
	return sh.RunV(binGo, "clean")
}

// Install builds and copies the binary to GOPATH/bin.
func Install() error {
	mg.Deps(Build)
	gopath, err := sh.Output(binGo, "env", "GOPATH")
	if err != nil {
		return err
	}
	dst := filepath.Join(gopath, "bin", binaryName)
	return sh.Copy(dst, binaryPath())
}

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}
