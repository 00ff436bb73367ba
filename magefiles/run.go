//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Runs the capability probe against the local GL driver.
func (Run) Probe() error {
	mg.Deps(Build.Lib)
	fmt.Println("Run probe...")
	if _, err := executeCmd("go", withArgs("run", "main.go"), withStream()); err != nil {
		return err
	}
	return nil
}
