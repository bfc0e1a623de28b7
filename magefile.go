//go:build mage
// +build mage

package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/magefile/mage/mg"
)

// Default target to run when none is specified.
var Default = Build

// Build compiles the decaygraph command into ./bin.
func Build() error {
	mg.Deps(Vet)
	fmt.Println("Building decaygraph executable...")
	return goCmd("build", "-o", "./bin/decaygraph", "./cmd/decaygraph")
}

// Test runs the unit tests with the race detector.
func Test() error {
	return goCmd("test", "-race", "./...")
}

// Vet runs go vet over every package.
func Vet() error {
	return goCmd("vet", "./...")
}

// goCmd runs the go tool with cgo enabled, which go-hdf5 and go-sqlite3
// need. CGO_CFLAGS and CGO_LDFLAGS are passed through for non-standard
// HDF5 installs.
func goCmd(args ...string) error {
	cmd := exec.Command("go", args...)
	cmd.Env = append(os.Environ(),
		"CGO_ENABLED=1",
		fmt.Sprintf("CGO_LDFLAGS=%s", os.Getenv("CGO_LDFLAGS")),
		fmt.Sprintf("CGO_CFLAGS=%s", os.Getenv("CGO_CFLAGS")))
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}
