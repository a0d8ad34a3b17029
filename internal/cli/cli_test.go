package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bjaus/pprint"
)

// execute runs the root command with args and stdin, returning stdout.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := New(io.Discard, LogInfo).RootCommand()
	root.SetArgs(append([]string{}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(io.Discard)
	err := root.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCommand(t *testing.T) {
	t.Parallel()
	tomlDoc := writeFile(t, "doc.toml", "b = 1\na = 2\n")
	jsonDoc := writeFile(t, "doc.json", `{"k": [true, null]}`)
	yamlCfg := writeFile(t, "layout.yaml", "width: 5\n")
	tomlCfg := writeFile(t, "layout.toml", "width = 5\nindent = \"  \"\n")

	tests := map[string]struct {
		stdin string
		args  []string
		want  string
	}{
		"stdin yaml": {
			stdin: "a: 1\n",
			want:  "{\"a\": 1}\n",
		},
		"stdin dash": {
			stdin: "[x]\n",
			args:  []string{"-"},
			want:  "[\"x\"]\n",
		},
		"json format flag": {
			stdin: "[1, 2, 3]",
			args:  []string{"-f", "json"},
			want:  "[1, 2, 3]\n",
		},
		"documents": {
			stdin: "--- 1\n--- 2\n",
			want:  "1\n2\n",
		},
		"toml file": {
			args: []string{tomlDoc},
			want: "{\"b\": 1, \"a\": 2}\n",
		},
		"several files": {
			args: []string{jsonDoc, tomlDoc},
			want: "{\"k\": [True, null]}\n{\"b\": 1, \"a\": 2}\n",
		},
		"width flag": {
			stdin: "a: 1\nb: 2\n",
			args:  []string{"--width", "5"},
			want:  "{\n    \"a\": 1,\n    \"b\": 2\n}\n",
		},
		"yaml config": {
			stdin: "a: 1\nb: 2\n",
			args:  []string{"--config", yamlCfg},
			want:  "{\n    \"a\": 1,\n    \"b\": 2\n}\n",
		},
		"toml config": {
			stdin: "a: 1\nb: 2\n",
			args:  []string{"--config", tomlCfg},
			want:  "{\n  \"a\": 1,\n  \"b\": 2\n}\n",
		},
		"flag overrides config": {
			stdin: "a: 1\nb: 2\n",
			args:  []string{"--config", yamlCfg, "--width", "100"},
			want:  "{\"a\": 1, \"b\": 2}\n",
		},
		"max items": {
			stdin: "[1, 2, 3, 4]\n",
			args:  []string{"--max-items", "2"},
			want:  "[1, 2, ...]\n",
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got, err := execute(t, tc.stdin, tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestRootCommandErrors(t *testing.T) {
	t.Parallel()
	iniCfg := writeFile(t, "layout.ini", "width=5\n")
	badCfg := writeFile(t, "layout.yaml", "colour: red\n")

	tests := map[string]struct {
		stdin   string
		args    []string
		wantErr error
	}{
		"unknown format": {
			stdin:   "a: 1\n",
			args:    []string{"-f", "xml"},
			wantErr: pprint.ErrUnsupportedFormat,
		},
		"unknown config extension": {
			stdin:   "a: 1\n",
			args:    []string{"--config", iniCfg},
			wantErr: pprint.ErrUnsupportedFormat,
		},
		"unknown config key": {
			stdin:   "a: 1\n",
			args:    []string{"--config", badCfg},
			wantErr: pprint.ErrInvalidConfig,
		},
		"invalid width": {
			stdin:   "a: 1\n",
			args:    []string{"--width", "0"},
			wantErr: pprint.ErrInvalidConfig,
		},
		"max depth": {
			stdin:   "[[[1]]]\n",
			args:    []string{"--max-depth", "2"},
			wantErr: pprint.ErrMaxDepth,
		},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := execute(t, tc.stdin, tc.args...)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRootCommandMissingFile(t *testing.T) {
	t.Parallel()
	_, err := execute(t, "", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestRootCommandDebugLogging(t *testing.T) {
	t.Parallel()
	var logs, out bytes.Buffer
	root := New(&logs, LogDebug).RootCommand()
	root.SetArgs([]string{})
	root.SetIn(strings.NewReader("a: 1\n"))
	root.SetOut(&out)
	require.NoError(t, root.Execute())
	assert.Contains(t, logs.String(), "reading input")
	assert.Contains(t, logs.String(), "formatting document")
}

func TestDetectFormat(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		format string
		name   string
		want   string
	}{
		"explicit":       {format: "TOML", name: "doc.yaml", want: FormatTOML},
		"json extension": {name: "doc.JSON", want: FormatJSON},
		"toml extension": {name: "doc.toml", want: FormatTOML},
		"yaml extension": {name: "doc.yml", want: FormatYAML},
		"stdin":          {name: "-", want: FormatYAML},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, detectFormat(tc.format, tc.name))
		})
	}
}

func TestSetVersion(t *testing.T) {
	v, c, d := version, commit, date
	t.Cleanup(func() { SetVersion(v, c, d) })

	SetVersion("1.0.0", "abc123", "2024-01-01")
	assert.Equal(t, "1.0.0", version)
	assert.Equal(t, "abc123", commit)
	assert.Equal(t, "2024-01-01", date)
}
