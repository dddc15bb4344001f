//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryPath = "bin/hooksmith"
	mainPkg    = "./cmd/hooksmith"
)

// Binary builds the main binary
func (Build) Binary() error {
	fmt.Println("Building hooksmith...")
	return sh.Run("go", "build", "-ldflags", ldflags(), "-o", binaryPath, mainPkg)
}

// Install installs the binary to $GOPATH/bin
func (Build) Install() error {
	fmt.Println("Installing hooksmith...")
	return sh.Run("go", "install", "-ldflags", ldflags(), mainPkg)
}

// Debug builds with debug flags
func (Build) Debug() error {
	fmt.Println("Building hooksmith with debug flags...")
	return sh.Run(
		"go",
		"build",
		"-gcflags",
		"all=-N -l",
		"-o",
		binaryPath+"-debug",
		mainPkg,
	)
}

// All builds the binary and installs the repository's hooks
func (Build) All() {
	mg.SerialDeps(Build.Binary, Hooks.Install)
}

// ldflags stamps the version and commit into the binary
func ldflags() string {
	commit, err := sh.Output("git", "rev-parse", "--short", "HEAD")
	if err != nil {
		commit = "none"
	}
	return fmt.Sprintf("-X main.version=%s -X main.commit=%s", version, commit)
}
