/*
File   : aoi/internal/repl/repl.go
Author : Akash Maji
Contact: akashmaji(@iisc.ac.in)
*/

// Package repl implements the Read-Eval-Print Loop supplement to spec.md
// §6's two CLI modes — a third, interactive mode in the same idiom as
// teacher's repl.Repl: readline for line editing/history, fatih/color
// for feedback. Each accepted line is run through its own
// lexer/parser, but against a single persistent Evaluator, so variable
// and function declarations accumulate across lines the way a REPL
// user expects.
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/aoi/internal/interp"
	"github.com/akashmaji946/aoi/internal/lexer"
	"github.com/akashmaji946/aoi/internal/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the cosmetic configuration for one interactive session.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	Prompt  string
}

// New creates a Repl with the given banner/version/author/separator/prompt.
func New(banner, version, author, line, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, Prompt: prompt}
}

func (r *Repl) printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", r.Line)
	greenColor.Fprintf(w, "%s\n", r.Banner)
	blueColor.Fprintf(w, "%s\n", r.Line)
	yellowColor.Fprintln(w, "Version: "+r.Version+" | Author: "+r.Author)
	blueColor.Fprintf(w, "%s\n", r.Line)
	cyanColor.Fprintf(w, "%s\n", "Welcome to Aoi!")
	cyanColor.Fprintf(w, "%s\n", "Type a statement and press enter.")
	cyanColor.Fprintf(w, "%s\n", "Type '.exit' to quit.")
	blueColor.Fprintf(w, "%s\n", r.Line)
}

// Start runs the interactive loop against writer, reading lines until
// '.exit' or EOF.
func (r *Repl) Start(writer io.Writer) {
	r.printBanner(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := interp.New()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.evalLine(writer, line, ev)
	}
}

func (r *Repl) evalLine(writer io.Writer, line string, ev *interp.Evaluator) {
	defer func() {
		if rec := recover(); rec != nil {
			redColor.Fprintf(writer, "Runtime error: %v\n", rec)
		}
	}()

	lx := lexer.New(line)
	tokens := lx.ScanTokens()
	if len(lx.Errors) > 0 {
		for _, d := range lx.Errors {
			redColor.Fprintf(writer, "%s\n", d.String())
		}
		return
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if len(p.Errors) > 0 {
		for _, msg := range p.Errors {
			redColor.Fprintf(writer, "%s\n", msg)
		}
		return
	}

	before := ev.Output()
	after := ev.Interpret(statements)
	delta := after[len(before):]
	if delta != "" {
		yellowColor.Fprint(writer, delta)
	}
}
