//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

var testPackages = []string{"./pkg/...", "./internal/...", "./cmd/..."}

func goTest(flags ...string) error {
	args := append([]string{"test"}, flags...)
	return sh.RunV("go", append(args, testPackages...)...)
}

// Unit runs unit tests
func (Test) Unit() error {
	fmt.Println("Running unit tests...")
	return goTest("-p", "4")
}

// Race runs unit tests with the race detector
func (Test) Race() error {
	fmt.Println("Running unit tests with the race detector...")
	return goTest("-race")
}

// UnitSingle runs unit tests with no parallelism (for debugging)
func (Test) UnitSingle() error {
	fmt.Println("Running unit tests sequentially (no parallelism)...")
	return goTest("-p", "1", "-parallel", "1", "-v")
}

// Coverage runs tests with coverage
func (Test) Coverage() error {
	fmt.Println("Running tests with coverage...")
	return goTest("-coverprofile=coverage.out")
}

// CoverageHTML generates HTML coverage report
func (Test) CoverageHTML() error {
	mg.Deps(Test.Coverage)
	fmt.Println("Generating HTML coverage report...")
	return sh.RunV("go", "tool", "cover", "-html=coverage.out", "-o", "coverage.html")
}

// Run runs the tests matching a name pattern
func (Test) Run(pattern string) error {
	fmt.Printf("Running tests matching %s...\n", pattern)
	return goTest("-run", pattern, "-v")
}
