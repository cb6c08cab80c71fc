package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jcgregorio/logger"
	"github.com/jcgregorio/slog"
	"github.com/lmorg/readline"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/chidiwilliams/tinyexpr/config"
	"github.com/chidiwilliams/tinyexpr/parse"
	"github.com/chidiwilliams/tinyexpr/repl"
	"github.com/chidiwilliams/tinyexpr/scan"
)

// Exit statuses. A rejected program is a data error.
const (
	exitOK        = 0
	exitFailure   = 1
	exitDataError = 65
)

// flag names
const (
	configFlagName   = "config"
	keywordsFlagName = "keywords"
	formatFlagName   = "format"
	verboseFlagName  = "verbose"
)

func main() {
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command line in args and returns the exit status.
func run(args []string, stdIn io.Reader, stdOut, stdErr io.Writer) int {
	app := newApp(stdIn, stdOut, stdErr)
	if err := app.Run(args); err != nil {
		_, _ = fmt.Fprintln(stdErr, err)
		return exitCode(err)
	}
	return exitOK
}

func exitCode(err error) int {
	var lexErr *scan.LexicalError
	var syntaxErr *parse.SyntaxError
	if errors.As(err, &lexErr) || errors.As(err, &syntaxErr) {
		return exitDataError
	}
	return exitFailure
}

func newApp(stdIn io.Reader, stdOut, stdErr io.Writer) *cli.App {
	newRunner := func(c *cli.Context) (*runner, error) {
		return setup(c, stdIn, stdOut, stdErr)
	}

	return &cli.App{
		Name:      "tinyexpr",
		Usage:     "tokenize and parse tinyexpr programs",
		Reader:    stdIn,
		Writer:    stdOut,
		ErrWriter: stdErr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  configFlagName,
				Usage: "path to a YAML config file",
			},
			&cli.StringSliceFlag{
				Name:  keywordsFlagName,
				Usage: "comma separated keyword set, overrides the config file",
			},
			&cli.StringFlag{
				Name:  formatFlagName,
				Usage: "output format for programs: sexpr, yaml or repr",
			},
			&cli.BoolFlag{
				Name:  verboseFlagName,
				Usage: "log progress to stderr",
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "tokens",
				Usage:     "print the tokens of each file",
				ArgsUsage: "[FILE...]",
				Action: func(c *cli.Context) error {
					r, err := newRunner(c)
					if err != nil {
						return err
					}
					return r.tokens(c.Args().Slice())
				},
			},
			{
				Name:      "ast",
				Usage:     "print the syntax tree of each file",
				ArgsUsage: "[FILE...]",
				Action: func(c *cli.Context) error {
					r, err := newRunner(c)
					if err != nil {
						return err
					}
					return r.ast(c.Context, c.Args().Slice())
				},
			},
			{
				Name:  "repl",
				Usage: "parse lines interactively",
				Action: func(c *cli.Context) error {
					r, err := newRunner(c)
					if err != nil {
						return err
					}
					r.log.Info("starting prompt")
					repl.Start(readline.NewInstance(), r.stdOut, r.scanner, r.format)
					return nil
				},
			},
		},
	}
}

// setup builds a runner from the config file and flags.
func setup(c *cli.Context, stdIn io.Reader, stdOut, stdErr io.Writer) (*runner, error) {
	cfg := config.Default()
	if path := c.String(configFlagName); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if c.IsSet(keywordsFlagName) {
		cfg.Keywords = c.StringSlice(keywordsFlagName)
	}
	if c.IsSet(formatFlagName) {
		cfg.Format = c.String(formatFlagName)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	sc, err := cfg.Scanner()
	if err != nil {
		return nil, err
	}

	log := newLogger(c.Bool(verboseFlagName), stdErr)
	log.Infof("keywords: %s; format: %s", strings.Join(sc.Keywords(), ", "), cfg.Format)

	return &runner{
		scanner: sc,
		format:  cfg.Format,
		log:     log,
		stdIn:   stdIn,
		stdOut:  stdOut,
	}, nil
}

func newLogger(verbose bool, w io.Writer) slog.Logger {
	if !verbose {
		return logger.NewNopLogger()
	}
	sw, ok := w.(logger.SyncWriter)
	if !ok {
		sw = syncWriter{w}
	}
	return logger.NewFromOptions(&logger.Options{
		SyncWriter:   sw,
		IncludeDebug: true,
	})
}

// syncWriter adds a no-op Sync to writers that lack one.
type syncWriter struct {
	io.Writer
}

func (syncWriter) Sync() error {
	return nil
}
