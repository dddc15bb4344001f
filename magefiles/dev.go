//go:build mage
// +build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Run builds and runs the application with help
func (Dev) Run() error {
	mg.Deps(Build.Binary)
	return sh.RunV("./"+binaryPath, "--help")
}

// Compare builds the binary and reports drift of the repository's hooks
func (Dev) Compare() error {
	mg.Deps(Build.Binary)
	return sh.RunV("./"+binaryPath, "compare", "--verbose")
}
