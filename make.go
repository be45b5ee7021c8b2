//go:build ignore
// +build ignore

package main

import (
	"fmt"
	"os"
	"os/exec"
)

func main() {
	targets := []string{"./bin/elevator"}
	srcs := []string{"./cmd/elevator"}

	for i := range targets {
		cmd := exec.Command("go", "build", "-o", targets[i], srcs[i])
		cmd.Stderr = os.Stderr
		cmd.Stdout = os.Stdout
		if err := cmd.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "building %v: %v\n", srcs[i], err)
			os.Exit(1)
		}
	}
}
