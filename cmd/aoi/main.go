/*
File   : aoi/cmd/aoi/main.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Command aoi is the entry point for the Aoi interpreter. It dispatches
// to one of three modes, per spec.md §6: `aoi run <file>` executes a
// script and prints its output; `aoi server` starts the HTTP
// collaborator; `aoi repl` starts the interactive loop (a supplement
// beyond spec.md's two CLI modes).
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const (
	version = "v1.0.0"
	author  = "akashmaji(@iisc.ac.in)"
	line    = "----------------------------------------------------------------"
	prompt  = "aoi >>> "
	banner  = `
    ▄▄▄▄                    ▄▄▄
   ██▀▀▀█                  ███
  ██        ▄████▄          █    Aoi
  ██ ▄▄▄▄   █▀  ▀█   █████   █
  ██ ▀▀██   █    █            █
   ██▄▄██   ▀██▄█▀          ▄▄█▄▄
     ▀▀▀▀     ▀▀▀▀
`
)

func main() {
	root := &cobra.Command{
		Use:   "aoi",
		Short: "Aoi is a small tree-walking interpreter",
	}

	root.AddCommand(newRunCommand())
	root.AddCommand(newServerCommand())
	root.AddCommand(newReplCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
