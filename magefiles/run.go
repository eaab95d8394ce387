//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
)

type Run mg.Namespace

// Builds the binary and evaluates the sample batch file.
func (Run) Batch() error {
	mg.Deps(Build.Binary)
	fmt.Println("Run sample batch...")
	if _, err := executeCmd("bin/icemath", withArgs("batch", "examples/sample.toml", "--out", "bin/sample.result.toml"), withStream()); err != nil {
		return err
	}
	return nil
}

// Builds the binary and prints an indexed unit sphere.
func (Run) Sphere() error {
	mg.Deps(Build.Binary)
	_, err := executeCmd("bin/icemath", withArgs("vertices", "sphere", "--rings", "4", "--sectors", "8", "--mesh"), withStream())
	return err
}
