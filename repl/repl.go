/*
File    : lox/repl/repl.go
*/

// Package repl implements the interactive Read-Eval-Print Loop described
// in spec.md §6.4: a line-at-a-time prompt that executes each line against
// a persistent global environment and prints its trailing value (unless
// it is Nil).
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/loxlang/lox/builtin"
	"github.com/loxlang/lox/eval"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/object"
	"github.com/loxlang/lox/parser"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is one interactive session's display configuration.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given banner and prompt configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type an expression or statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL loop against writer until the user exits or input is
// exhausted. Globals persist across lines so that `var`/`fun` declarations
// on one line are visible to the next.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	evaluator := eval.New()
	evaluator.Out = writer
	builtin.Install(evaluator.Globals)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)
		r.executeLine(writer, line, evaluator)
	}
}

// executeLine scans, parses, and evaluates one line of input against
// evaluator's persistent globals, printing the resulting value unless it
// is Nil (spec.md §6.4).
func (r *Repl) executeLine(writer io.Writer, line string, evaluator *eval.Evaluator) {
	tokens, err := lexer.Scan(line)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, perr := range p.Errors {
			redColor.Fprintf(writer, "%s\n", perr)
		}
		return
	}

	result, err := evaluator.Run(stmts, evaluator.Globals)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	if _, isNil := result.(object.Nil); !isNil {
		yellowColor.Fprintf(writer, "%s\n", result.Display())
	}
}
