// Command vih is the CLI entry point for the interpreter: an interactive
// REPL by default, or a one-shot runner over a source file in lexer,
// parser, or eval mode.
package main

import (
	"flag"
	"fmt"
	"github.com/sean-d/vih/evaluator"
	"github.com/sean-d/vih/lexer"
	"github.com/sean-d/vih/object"
	"github.com/sean-d/vih/parser"
	"github.com/sean-d/vih/repl"
	"github.com/sean-d/vih/token"
	"os"
	"os/user"
)

func main() {
	mode := flag.String("mode", "eval", "one of lexer, parser, eval")
	trace := flag.Bool("trace", false, "print every token the lexer produces before handing it to the parser")
	flag.Parse()

	if flag.NArg() == 0 {
		runREPL()
		return
	}

	if *mode != "lexer" && *mode != "parser" && *mode != "eval" {
		fmt.Fprintf(os.Stderr, "vih: unknown -mode %q (want lexer, parser, or eval)\n", *mode)
		os.Exit(2)
	}

	path := flag.Arg(0)
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vih: %v\n", err)
		os.Exit(2)
	}

	runFile(string(source), *mode, *trace)
}

func runREPL() {
	usr, err := user.Current()
	if err != nil {
		panic(err)
	}

	fmt.Printf("welcome %s to vih\n\n", usr.Username)
	repl.Start(os.Stdin, os.Stdout)
}

// runFile drives the requested mode over a whole source file. Parse and
// runtime errors are reported on stderr without a nonzero exit: only a
// usage error (bad -mode, missing file) is treated as fatal.
func runFile(source string, mode string, trace bool) {
	if trace {
		traceTokens(source)
	}

	if mode == "lexer" {
		printTokens(source)
		return
	}

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			fmt.Fprintln(os.Stderr, msg)
		}
		return
	}

	if mode == "parser" {
		fmt.Println(program.String())
		return
	}

	env := object.NewEnvironment()
	result := evaluator.Eval(program, env)
	if result == nil {
		return
	}

	if result.Type() == object.ERROR_OBJ {
		fmt.Fprintln(os.Stderr, result.Inspect())
		return
	}

	fmt.Println(result.Inspect())
}

// printTokens runs the lexer to completion and prints each token, one per
// line, for -mode lexer.
func printTokens(source string) {
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Printf("%+v\n", tok)
		if tok.Type == token.EOF {
			break
		}
	}
}

// traceTokens is the -trace diagnostic: it runs a throwaway lexer over the
// same source purely to print the token stream, leaving the real lexer used
// by the chosen mode untouched.
func traceTokens(source string) {
	l := lexer.New(source)
	for {
		tok := l.NextToken()
		fmt.Fprintf(os.Stderr, "trace: %+v\n", tok)
		if tok.Type == token.EOF {
			break
		}
	}
}
