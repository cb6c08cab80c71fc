// Package render writes token streams and programs for people to read.
package render

import (
	"fmt"
	"io"

	"github.com/alecthomas/repr"
	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chidiwilliams/tinyexpr/ast"
	"github.com/chidiwilliams/tinyexpr/config"
)

// Program writes program to w in the given format.
func Program(w io.Writer, program *ast.Program, format string) error {
	switch format {
	case config.FormatSExpr:
		if len(program.Statements) == 0 {
			return nil
		}
		_, err := fmt.Fprintln(w, ast.Print(program))
		return err
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(program); err != nil {
			return errors.Wrap(err, "encoding yaml")
		}
		return enc.Close()
	case config.FormatRepr:
		_, err := fmt.Fprintln(w, repr.String(program, repr.Indent("  ")))
		return err
	}
	return errors.Errorf("unknown format %q", format)
}

// Tokens writes one table row per token.
func Tokens(w io.Writer, tokens []ast.Token) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Position", "Type", "Lexeme"})
	table.SetAutoFormatHeaders(false)
	for _, t := range tokens {
		table.Append([]string{t.Pos.String(), t.TokenType.String(), displayLexeme(t)})
	}
	table.Render()
}

func displayLexeme(t ast.Token) string {
	if t.TokenType == ast.TokenNewline {
		return `\n`
	}
	return t.Lexeme
}
