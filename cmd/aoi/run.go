/*
File   : aoi/cmd/aoi/run.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/akashmaji946/aoi/internal/interp"
	"github.com/akashmaji946/aoi/internal/lexer"
	"github.com/akashmaji946/aoi/internal/parser"
)

var redColor = color.New(color.FgRed)

// newRunCommand builds `aoi run <filename>`: reads the file, runs
// interpret, prints the resulting output string to stdout, exits 0.
// Per spec.md §6, a file read failure prints a diagnostic and exits
// nonzero; the input-validation guards of §6 apply only to the server
// collaborator, not to this CLI mode.
func newRunCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "run <filename>",
		Short: "Run an Aoi source file and print its output",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			content, err := os.ReadFile(filename)
			if err != nil {
				redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", filename, err)
				os.Exit(1)
			}

			lx := lexer.New(string(content))
			tokens := lx.ScanTokens()
			for _, d := range lx.Errors {
				fmt.Fprintln(os.Stderr, d.String())
			}

			p := parser.New(tokens)
			statements := p.Parse()
			if len(p.Errors) > 0 {
				for _, msg := range p.Errors {
					redColor.Fprintf(os.Stderr, "%s\n", msg)
				}
				fmt.Println("Parsing failed due to syntax errors.")
				os.Exit(1)
			}

			ev := interp.New()
			fmt.Print(ev.Interpret(statements))
			return nil
		},
	}
}
