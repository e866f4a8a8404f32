/*
File    : lox/cmd/lox/main.go
*/

// Command lox is the interpreter's process entry point (spec.md §6.4): run
// a source file given as an argument, or start an interactive REPL with no
// arguments.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/loxlang/lox/builtin"
	"github.com/loxlang/lox/eval"
	"github.com/loxlang/lox/lexer"
	"github.com/loxlang/lox/parser"
	"github.com/loxlang/lox/repl"
)

const (
	version = "v1.0.0"
	author  = "loxlang"
	license = "MIT"
	prompt  = "lox >>> "
	line    = "----------------------------------------------------------------"
)

var banner = `
  ██╗      ██████╗ ██╗  ██╗
  ██║     ██╔═══██╗╚██╗██╔╝
  ██║     ██║   ██║ ╚███╔╝
  ██║     ██║   ██║ ██╔██╗
  ███████╗╚██████╔╝██╔╝ ██╗
  ╚══════╝ ╚═════╝ ╚═╝  ╚═╝
`

var (
	redColor    = color.New(color.FgRed)
	cyanColor   = color.New(color.FgCyan)
	yellowColor = color.New(color.FgYellow)
)

func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		switch arg {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		}

		runFile(arg)
		return
	}

	repler := repl.NewRepl(banner, version, author, line, license, prompt)
	repler.Start(os.Stdin, os.Stdout)
}

func showHelp() {
	cyanColor.Println("lox - a tree-walking interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                    Start interactive REPL mode")
	yellowColor.Println("  lox <path-to-file>     Execute a lox source file")
	yellowColor.Println("  lox --help             Display this help message")
	yellowColor.Println("  lox --version          Display version information")
}

func showVersion() {
	cyanColor.Println("lox - a tree-walking interpreter")
	cyanColor.Printf("Version: %s\n", version)
	cyanColor.Printf("License: %s\n", license)
}

// runFile reads, scans, parses, and evaluates the file at path, exiting
// with a nonzero status on any error (spec.md §6.4).
func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", path, err)
		os.Exit(1)
	}

	tokens, err := lexer.Scan(string(source))
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}

	p := parser.New(tokens)
	stmts := p.Parse()
	if p.HasErrors() {
		for _, perr := range p.Errors {
			redColor.Fprintf(os.Stderr, "%s\n", perr)
		}
		os.Exit(1)
	}

	evaluator := eval.New()
	builtin.Install(evaluator.Globals)

	if _, err := evaluator.Run(stmts, evaluator.Globals); err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
}
