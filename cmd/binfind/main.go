// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

// Command binfind locates executables the way a command shell does, like
// which(1), and verifies project tool manifests.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	os.Exit(run(newRootCommand()))
}

// run executes cmd and reports failures on stderr, except those the command
// already rendered itself (errReported).
func run(cmd *cobra.Command) int {
	if err := cmd.Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, err)
		}
		return 1
	}
	return 0
}
