//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"

	"github.com/magefile/mage/sh"
)

// All removes all build artifacts
func (Clean) All() error {
	fmt.Println("Cleaning all build artifacts...")
	return os.RemoveAll("bin")
}

// Coverage removes coverage files
func (Clean) Coverage() error {
	fmt.Println("Cleaning coverage files...")
	for _, file := range []string{"coverage.out", "coverage.html"} {
		if err := os.Remove(file); err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}

// Deps removes dependency cache
func (Clean) Deps() error {
	fmt.Println("Cleaning dependency cache...")
	return sh.Run("go", "clean", "-modcache")
}
