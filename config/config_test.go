package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, []string{"print", "sum"}, cfg.Keywords)
	assert.Equal(t, FormatSExpr, cfg.Format)
	require.NoError(t, cfg.Validate())

	// Changing one default must not leak into the next.
	cfg.Keywords[0] = "changed"
	assert.Equal(t, "print", Default().Keywords[0])
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		keywords []string
		format   string
	}{
		{"empty document", "", []string{"print", "sum"}, FormatSExpr},
		{"format only", "format: repr\n", []string{"print", "sum"}, FormatRepr},
		{"keywords only", "keywords: [echo]\n", []string{"echo"}, FormatSExpr},
		{"no keywords", "keywords: []\n", []string{}, FormatSExpr},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Decode(strings.NewReader(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.keywords, cfg.Keywords)
			assert.Equal(t, tt.format, cfg.Format)
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"unknown field", "keyword: [print]\n"},
		{"wrong type", "keywords: print\n"},
		{"bad format", "format: json\n"},
		{"bad keyword", "keywords: ['9lives']\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(strings.NewReader(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := &Config{
		Keywords: []string{"ok", "not ok", "", "ok"},
		Format:   "xml",
	}
	err := cfg.Validate()
	require.Error(t, err)

	merr, ok := err.(*multierror.Error)
	require.True(t, ok, "want *multierror.Error, got %T", err)
	assert.Len(t, merr.Errors, 4)
	assert.Contains(t, err.Error(), `"not ok"`)
	assert.Contains(t, err.Error(), `listed more than once`)
	assert.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "custom.yaml"))
	require.NoError(t, err)
	assert.Equal(t, []string{"show", "max"}, cfg.Keywords)
	assert.Equal(t, FormatYAML, cfg.Format)

	sc, err := cfg.Scanner()
	require.NoError(t, err)
	assert.Equal(t, []string{"max", "show"}, sc.Keywords())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "opening config")

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("format: [\n"), 0644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading config "+bad)
}

func TestIsFormat(t *testing.T) {
	for _, f := range Formats {
		assert.True(t, IsFormat(f), f)
	}
	assert.False(t, IsFormat(""))
	assert.False(t, IsFormat("SEXPR"))
}
