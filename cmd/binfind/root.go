// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/binfind/binfind"
	"github.com/binfind/binfind/cliout"
	"github.com/binfind/binfind/logutil"
	"github.com/binfind/binfind/version"
)

// errReported marks failures whose diagnostics the command already printed
// (or deliberately suppressed with --silent); main exits nonzero without
// repeating them.
var errReported = errors.New("lookup failed")

// lookupResult is the JSON shape for one resolved name.
type lookupResult struct {
	Name  string   `json:"name"`
	Paths []string `json:"paths"`
	Found bool     `json:"found"`
}

func newRootCommand() *cobra.Command {
	var (
		all          bool
		silent       bool
		debug        bool
		outputFormat string
	)

	cmd := &cobra.Command{
		Use:   "binfind NAME...",
		Short: "Locate executables on the search path",
		Long: `binfind resolves program names to executable paths using shell lookup
semantics: bare names are searched across $PATH in priority order, and names
containing a path separator are resolved against the working directory.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logutil.SetupLogger(debug, outputFormat == "json")
			return cliout.SetFormat(outputFormat)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			results := make([]lookupResult, 0, len(args))
			missing := 0
			for _, name := range args {
				r, err := resolve(name, all)
				if err != nil {
					// Configuration error, not a zero-match result.
					return fmt.Errorf("%s: %w", name, err)
				}
				if !r.Found {
					missing++
				}
				results = append(results, r)
			}

			if !silent {
				if cliout.IsJSON() {
					if err := cliout.PrintJSON(results); err != nil {
						return err
					}
				} else {
					printResults(results)
				}
			}

			if missing > 0 {
				return errReported
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Print every match instead of the first")
	cmd.Flags().BoolVarP(&silent, "silent", "s", false, "No output; exit status only")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "default", "Output format (default, json)")

	info := version.New("binfind")
	cmd.AddCommand(version.NewCommand(info, &outputFormat))
	cmd.AddCommand(newCheckCommand())

	return cmd
}

// resolve looks up one name, returning every match when all is set and the
// first match otherwise. A missing executable is a Found=false result; only
// configuration failures (no working directory, no search path) are errors.
func resolve(name string, all bool) (lookupResult, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return lookupResult{}, fmt.Errorf("failed to determine working directory: %w", err)
	}
	searchPath := os.Getenv("PATH")

	if all {
		paths, err := binfind.WhichAllIn(name, searchPath, cwd)
		if err != nil {
			return lookupResult{}, err
		}
		return lookupResult{Name: name, Paths: paths, Found: len(paths) > 0}, nil
	}

	path, err := binfind.WhichIn(name, searchPath, cwd)
	if errors.Is(err, binfind.ErrNotFound) {
		logutil.Debug("no match", "name", name)
		return lookupResult{Name: name}, nil
	}
	if err != nil {
		return lookupResult{}, err
	}
	return lookupResult{Name: name, Paths: []string{path}, Found: true}, nil
}

func printResults(results []lookupResult) {
	for _, r := range results {
		if !r.Found {
			cliout.Error("%s not found", r.Name)
			continue
		}
		for _, path := range r.Paths {
			cliout.Plain("%s", path)
		}
	}
}
