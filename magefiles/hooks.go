//go:build mage
// +build mage

package main

import (
	"fmt"

	"github.com/blairham/hooksmith/pkg/hooksmith"
)

// hooksConfig declares this repository's own git hooks
const hooksConfig = "hooksmith.yaml"

// Install writes the git hooks declared in hooksmith.yaml
func (Hooks) Install() error {
	fmt.Println("Installing git hooks from " + hooksConfig + "...")
	if err := hooksmith.Initialize(hooksConfig); err != nil {
		return fmt.Errorf("failed to install git hooks: %w", err)
	}
	return nil
}
