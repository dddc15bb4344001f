//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Lint runs golangci-lint from the module's tool dependencies
func (Quality) Lint() error {
	fmt.Println("Running linter...")
	return sh.RunV("go", "tool", "golangci-lint", "run", "./...")
}

// Format formats the code with gofumpt
func (Quality) Format() error {
	fmt.Println("Formatting code with gofumpt...")
	if err := sh.RunV("go", "tool", "gofumpt", "-l", "-w", "."); err != nil {
		return fmt.Errorf("gofumpt failed: %w", err)
	}
	return nil
}

// Vet runs go vet
func (Quality) Vet() error {
	fmt.Println("Running go vet...")
	return sh.Run("go", "vet", "./...")
}

// Generate regenerates the gomock mocks
func (Quality) Generate() error {
	fmt.Println("Generating mocks...")
	return sh.RunV("go", "generate", "./pkg/...")
}

// Modernize runs the Go modernize tool to update code to modern Go patterns
func (Quality) Modernize() error {
	fmt.Println("Running Go modernize tool...")
	return sh.Run(
		"go",
		"run",
		"golang.org/x/tools/gopls/internal/analysis/modernize/cmd/modernize@latest",
		"-fix",
		"-test",
		"./...",
	)
}

// All runs all quality checks
func (Quality) All() {
	mg.Deps(Quality.Format, Quality.Vet, Quality.Lint, Quality.Modernize, Test.Unit)
}
