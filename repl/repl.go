package repl

import (
	"fmt"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/sean-d/vih/evaluator"
	"github.com/sean-d/vih/lexer"
	"github.com/sean-d/vih/object"
	"github.com/sean-d/vih/parser"
	"io"
	"strings"
)

const PROMPT = ">>> "

const WELCOME_VIH = `
⣴⣦⣤⣄⣀⣠⣄⠀⣰⡆⣰⡆⠀⠀
vih 0.1.0⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀
⠛⠛⠹⠛⠛⢽⠟⠁⠸⠛⠻⠟⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀⠀
`
const SAD_FACE = `
(◞‸ ◟)💧
`

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Start runs the interactive prompt against a single persistent
// *object.Environment for the whole session: a `let` in one line is visible
// to every line after it. Parser and runtime errors are printed and the
// loop continues; only EOF (Ctrl-D) or a readline error ends it.
func Start(in io.Reader, out io.Writer) {
	greenColor.Fprintf(out, "%s\n", WELCOME_VIH)
	cyanColor.Fprintf(out, "%s\n", "type vih expressions and press enter")
	cyanColor.Fprintf(out, "%s\n", "ctrl-d to exit")

	rl, err := readline.New(PROMPT)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	env := object.NewEnvironment()

	for {
		line, err := rl.Readline()
		if err != nil {
			fmt.Fprintln(out, "bye")
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		rl.SaveHistory(line)

		l := lexer.New(line)
		p := parser.New(l)

		program := p.ParseProgram()
		if len(p.Errors()) != 0 {
			printParserErrors(out, p.Errors())
			continue
		}

		evaluated := evaluator.Eval(program, env)
		if evaluated == nil {
			continue
		}

		if evaluated.Type() == object.ERROR_OBJ {
			redColor.Fprintf(out, "%s\n", evaluated.Inspect())
			continue
		}

		yellowColor.Fprintf(out, "%s\n", evaluated.Inspect())
	}
}

func printParserErrors(out io.Writer, errors []string) {
	redColor.Fprintf(out, "%s", SAD_FACE)
	redColor.Fprintf(out, "%s\n", "what'd you doooo?!")
	for _, msg := range errors {
		redColor.Fprintf(out, "\t%s\n", msg)
	}
}
