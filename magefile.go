//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Default target - build the binary
var Default = Build

// Build builds the bootcheck binary
func Build() error {
	return sh.RunV("go", "build", "-o", "bin/bootcheck", "./cmd/bootcheck")
}

// Test runs the test suite
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Check runs the built binary once and reports its tally
func Check() error {
	mg.Deps(Build)
	return sh.RunV("./bin/bootcheck")
}

// QA runs all quality assurance checks
func QA() error {
	fmt.Println("Running QA checks...")

	if err := sh.RunV("go", "vet", "./..."); err != nil {
		return fmt.Errorf("vet failed: %w", err)
	}
	if err := sh.RunV("gofmt", "-l", "."); err != nil {
		return fmt.Errorf("format check failed: %w", err)
	}
	return Test()
}

// Clean removes build artifacts
func Clean() error {
	return sh.Rm("bin")
}
