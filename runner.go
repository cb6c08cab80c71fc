package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jcgregorio/slog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/chidiwilliams/tinyexpr/ast"
	"github.com/chidiwilliams/tinyexpr/parse"
	"github.com/chidiwilliams/tinyexpr/render"
	"github.com/chidiwilliams/tinyexpr/scan"
)

const stdinName = "-"

type runner struct {
	scanner *scan.Scanner
	format  string
	log     slog.Logger
	stdIn   io.Reader
	stdOut  io.Writer
}

// tokens prints the token table of each file in turn.
func (r *runner) tokens(paths []string) error {
	paths = defaultPaths(paths)
	for _, path := range paths {
		source, err := r.read(path)
		if err != nil {
			return err
		}

		tokens, err := r.scanner.ScanTokens(displayName(path), source)
		if err != nil {
			return err
		}
		r.log.Debugf("%s: %d tokens", displayName(path), len(tokens))

		if len(paths) > 1 {
			_, _ = fmt.Fprintf(r.stdOut, "# %s\n", displayName(path))
		}
		render.Tokens(r.stdOut, tokens)
	}
	return nil
}

// ast parses every file concurrently and prints the programs in argument
// order. Nothing is printed if any file fails.
func (r *runner) ast(ctx context.Context, paths []string) error {
	paths = defaultPaths(paths)

	sources := make([]string, len(paths))
	for i, path := range paths {
		source, err := r.read(path)
		if err != nil {
			return err
		}
		sources[i] = source
	}

	programs := make([]*ast.Program, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	for i := range paths {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			program, err := parse.Source(r.scanner, displayName(paths[i]), sources[i])
			if err != nil {
				return err
			}
			programs[i] = program
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, program := range programs {
		r.log.Debugf("%s: %d statements", displayName(paths[i]), len(program.Statements))
		if len(paths) > 1 {
			_, _ = fmt.Fprintf(r.stdOut, "# %s\n", displayName(paths[i]))
		}
		if err := render.Program(r.stdOut, program, r.format); err != nil {
			return err
		}
	}
	return nil
}

func (r *runner) read(path string) (string, error) {
	if path == stdinName {
		b, err := io.ReadAll(r.stdIn)
		if err != nil {
			return "", errors.Wrap(err, "reading stdin")
		}
		return string(b), nil
	}

	b, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "reading %s", path)
	}
	return string(b), nil
}

func defaultPaths(paths []string) []string {
	if len(paths) == 0 {
		return []string{stdinName}
	}
	return paths
}

func displayName(path string) string {
	if path == stdinName {
		return "<stdin>"
	}
	return path
}
