// Copyright (c) binfind contributors. All rights reserved.
// Licensed under the MIT License.

package main

import (
	"fmt"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"

	"github.com/binfind/binfind/cliout"
	"github.com/binfind/binfind/logutil"
	"github.com/binfind/binfind/toolset"
)

func newCheckCommand() *cobra.Command {
	var open bool

	cmd := &cobra.Command{
		Use:   "check MANIFEST",
		Short: "Verify that a manifest's tools are on the search path",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manifest, err := toolset.Load(args[0])
			if err != nil {
				return err
			}

			results := toolset.Verify(manifest)
			if cliout.IsJSON() {
				if err := cliout.PrintJSON(results); err != nil {
					return err
				}
			} else {
				printCheckResults(results)
			}

			missing := toolset.Missing(results)
			if open {
				for _, r := range missing {
					if err := browser.OpenURL(r.Suggestion()); err != nil {
						logutil.Warn("failed to open install page", "tool", r.Tool.Name, "error", err)
					}
				}
			}

			if len(missing) > 0 {
				return fmt.Errorf("%d required tools missing", len(missing))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&open, "open", false, "Open install pages for missing tools in the browser")
	return cmd
}

func printCheckResults(results []toolset.Result) {
	for _, r := range results {
		switch {
		case r.Found:
			cliout.Success("%s (%s)", r.Tool.Name, r.Path)
		case r.Tool.Optional:
			cliout.Warning("%s not found (optional)", r.Tool.Name)
		default:
			cliout.Error("%s not found", r.Tool.Name)
			cliout.Hint("%s", r.Suggestion())
		}
	}
}
