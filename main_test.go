package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Run(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		stdIn    string
		stdOut   string
		exitCode int
	}{
		// statements
		{"assignment", []string{"ast"}, "x = 10\n", "(= x 10)\n", exitOK},
		{"assignment then print", []string{"ast"}, "x = 2 print(x)", "(= x 2)\n(call print x)\n", exitOK},
		{"sum", []string{"ast"}, "sum(1, 2)", "(call sum 1 2)\n", exitOK},
		{"empty call", []string{"ast"}, "f()", "(call f)\n", exitOK},
		{"empty program", []string{"ast"}, "\n\n", "", exitOK},

		// precedence
		{"multiplication before addition", []string{"ast"}, "a + b * c", "(+ a (* b c))\n", exitOK},
		{"left associative", []string{"ast"}, "a - b - c", "(- (- a b) c)\n", exitOK},
		{"power binds tightest", []string{"ast"}, "2 * 3 ^ 2", "(* 2 (^ 3 2))\n", exitOK},

		// keywords
		{"injected keywords", []string{"--keywords", "show", "ast"}, "show(print)", "(call show print)\n", exitOK},
		{"stdin as dash", []string{"ast", "-"}, "y = 'a'", "(= y \"a\")\n", exitOK},

		// errors
		{"lexical error", []string{"ast"}, "x = 1 @ 2", "", exitDataError},
		{"trailing comma", []string{"ast"}, "sum(1, 2,)", "", exitDataError},
		{"missing close paren", []string{"ast"}, "print(1", "", exitDataError},
		{"lexical error in tokens", []string{"tokens"}, "'open", "", exitDataError},
		{"unknown format", []string{"--format", "json", "ast"}, "x", "", exitFailure},
		{"invalid keyword", []string{"--keywords", "not-a-word", "ast"}, "x", "", exitFailure},
		{"missing file", []string{"ast", "does-not-exist.tx"}, "", "", exitFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdOut := &bytes.Buffer{}
			stdErr := &bytes.Buffer{}
			args := append([]string{"tinyexpr"}, tt.args...)

			code := run(args, strings.NewReader(tt.stdIn), stdOut, stdErr)

			assert.Equal(t, tt.exitCode, code, "stdErr: %s", stdErr)
			assert.Equal(t, tt.stdOut, stdOut.String())
			if tt.exitCode != exitOK {
				assert.NotEmpty(t, stdErr.String())
			}
		})
	}
}

func Test_Run_Tokens(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}

	code := run([]string{"tinyexpr", "tokens"}, strings.NewReader("print(x)\n"), stdOut, stdErr)
	require.Equal(t, exitOK, code, stdErr.String())

	out := stdOut.String()
	for _, want := range []string{"KEYWORD", "OPEN_PAREN", "IDENTIFIER", "CLOSE_PAREN", "NEWLINE", "<stdin>:1:1"} {
		assert.Contains(t, out, want)
	}
}

func Test_Run_Files(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.tx")
	second := filepath.Join(dir, "second.tx")
	require.NoError(t, os.WriteFile(first, []byte("a = 1\n"), 0644))
	require.NoError(t, os.WriteFile(second, []byte("print(a)\n"), 0644))

	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	code := run([]string{"tinyexpr", "ast", first, second}, strings.NewReader(""), stdOut, stdErr)
	require.Equal(t, exitOK, code, stdErr.String())

	want := "# " + first + "\n(= a 1)\n# " + second + "\n(call print a)\n"
	assert.Equal(t, want, stdOut.String())
}

func Test_Run_SyntaxErrorNamesFile(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "good.tx")
	bad := filepath.Join(dir, "bad.tx")
	require.NoError(t, os.WriteFile(good, []byte("a = 1\n"), 0644))
	require.NoError(t, os.WriteFile(bad, []byte("a = 1\nprint(a b)\n"), 0644))

	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	code := run([]string{"tinyexpr", "ast", good, bad}, strings.NewReader(""), stdOut, stdErr)

	assert.Equal(t, exitDataError, code)
	assert.Empty(t, stdOut.String())
	assert.Contains(t, stdErr.String(), "["+bad+":2:9] Error at 'b': Expect CLOSE_PAREN but got IDENTIFIER.")
}

func Test_Run_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	cfg := filepath.Join(dir, "tinyexpr.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("keywords: [echo]\nformat: yaml\n"), 0644))

	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	code := run([]string{"tinyexpr", "--config", cfg, "ast"}, strings.NewReader("echo(1)"), stdOut, stdErr)
	require.Equal(t, exitOK, code, stdErr.String())

	assert.Contains(t, stdOut.String(), "statements:")
	assert.Contains(t, stdOut.String(), "kind: call")
	assert.Contains(t, stdOut.String(), "name: echo")

	// Flags win over the file.
	stdOut.Reset()
	code = run([]string{"tinyexpr", "--config", cfg, "--format", "sexpr", "ast"}, strings.NewReader("echo(1)"), stdOut, stdErr)
	require.Equal(t, exitOK, code, stdErr.String())
	assert.Equal(t, "(call echo 1)\n", stdOut.String())
}

func Test_Run_Verbose(t *testing.T) {
	stdOut := &bytes.Buffer{}
	stdErr := &bytes.Buffer{}
	code := run([]string{"tinyexpr", "--verbose", "ast"}, strings.NewReader("x = 1"), stdOut, stdErr)
	require.Equal(t, exitOK, code, stdErr.String())

	assert.Equal(t, "(= x 1)\n", stdOut.String())
	assert.Contains(t, stdErr.String(), "1 statements")
	assert.Contains(t, stdErr.String(), "keywords: print, sum; format: sexpr")
}
