/*
File   : aoi/cmd/aoi/repl.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/aoi/internal/repl"
)

// newReplCommand builds `aoi repl`: an interactive session supplementing
// spec.md §6's two CLI modes (see SPEC_FULL.md §6).
func newReplCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Aoi session",
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.New(banner, version, author, line, prompt)
			r.Start(os.Stdout)
			return nil
		},
	}
}
