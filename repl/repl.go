package repl

import (
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"

	"github.com/chidiwilliams/tinyexpr/parse"
	"github.com/chidiwilliams/tinyexpr/render"
	"github.com/chidiwilliams/tinyexpr/scan"
)

const prompt = "> "

var errColor = color.New(color.FgRed)

// LineReader is the part of *readline.Instance the prompt needs.
type LineReader interface {
	SetPrompt(string)
	Readline() (string, error)
}

// Start reads lines from rl until it fails or the user types exit,
// printing the parse of each line to out. Errors are printed and the loop
// carries on.
func Start(rl LineReader, out io.Writer, sc *scan.Scanner, format string) {
	rl.SetPrompt(prompt)
	for {
		line, err := rl.Readline()
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" || line == "quit" {
			return
		}

		if err := Eval(out, sc, line, format); err != nil {
			_, _ = errColor.Fprintln(out, err)
		}
	}
}

// Eval parses one line of input and renders it to out.
func Eval(out io.Writer, sc *scan.Scanner, line, format string) error {
	program, err := parse.Source(sc, "", line)
	if err != nil {
		return err
	}
	if err := render.Program(out, program, format); err != nil {
		return errors.Wrap(err, "rendering")
	}
	return nil
}
