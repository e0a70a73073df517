package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/matzehuels/scoreplot/pkg/errors"
)

// runCommand executes the root command with args and returns its output.
// The default config location points at an empty temp dir.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	root := NewRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plot.toml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestParseColorArg(t *testing.T) {
	tests := []struct {
		arg  string
		want any
	}{
		{"red", "red"},
		{"Steel Blue", "Steel Blue"},
		{"#f50", "#f50"},
		{"0.8", 0.8},
		{"255", 255.0},
		{"0.5,0.5,0.5", []float64{0.5, 0.5, 0.5}},
		{"255, 128, 0", []float64{255, 128, 0}},
		{"a,b", "a,b"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			if got := parseColorArg(tt.arg); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseColorArg(%q) = %#v, want %#v", tt.arg, got, tt.want)
			}
		})
	}
}

func TestColorCommand(t *testing.T) {
	out, err := runCommand(t, "color", "red", "Steel Blue", "#f50", "0.8", "0.5,0.5,0.5", "255,255,255")
	if err != nil {
		t.Fatalf("color error: %v", err)
	}
	for _, want := range []string{"#ff0000", "#4682b4", "#ff5500", "#cccccc", "#808080", "#ffffff"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s:\n%s", want, out)
		}
	}
}

func TestColorCommand_Invalid(t *testing.T) {
	_, err := runCommand(t, "color", "l")
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("color l error = %v, want %s", err, errors.ErrCodeInvalidColor)
	}

	if _, err := runCommand(t, "color"); err == nil {
		t.Error("color without arguments should fail")
	}
}

func TestColorCommand_List(t *testing.T) {
	out, err := runCommand(t, "color", "--list")
	if err != nil {
		t.Fatalf("color --list error: %v", err)
	}
	if !strings.Contains(out, "steelblue") || !strings.Contains(out, "#4682b4") {
		t.Errorf("list output missing steelblue:\n%s", out)
	}
}

func TestFormatCommand(t *testing.T) {
	out, err := runCommand(t, "format", "Weighted", "Scatter")
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	if !strings.Contains(out, "scatterweighted") {
		t.Errorf("output = %q, want scatterweighted", out)
	}

	out, err = runCommand(t, "format", "4D super chart")
	if err != nil {
		t.Fatalf("format error: %v", err)
	}
	if !strings.Contains(out, "4dsuperchart") || !strings.Contains(out, "unrecognized") {
		t.Errorf("output = %q, want unrecognized 4dsuperchart", out)
	}
}

func TestValuesCommand(t *testing.T) {
	out, err := runCommand(t, "values", "pitchSpace", "Duration", "loudness")
	if err != nil {
		t.Fatalf("values error: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("got %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "pitch") || !strings.Contains(lines[1], "quarterlength") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(lines[2], "unrecognized") {
		t.Errorf("loudness should be unrecognized: %q", lines[2])
	}
}

func TestLabelCommand(t *testing.T) {
	out, err := runCommand(t, "label", "B-4", "C#5")
	if err != nil {
		t.Fatalf("label error: %v", err)
	}
	if !strings.Contains(out, "B♭4") || !strings.Contains(out, "C♯5") {
		t.Errorf("output = %q", out)
	}
}

func TestResolveCommand(t *testing.T) {
	path := writeConfig(t, `
[plot]
format = "piano"
values = ["pc", "offset"]
colors = ["r", [0.5, 0.5, 0.5]]
title = "B-4"
`)

	out, err := runCommand(t, "resolve", path)
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	for _, want := range []string{"horizontalbar", "pitchclass, offset", "B♭4", "#ff0000", "#808080"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, err = runCommand(t, "--config", path, "resolve")
	if err != nil {
		t.Fatalf("resolve --config error: %v", err)
	}
	if !strings.Contains(out, "horizontalbar") {
		t.Errorf("--config output missing format:\n%s", out)
	}
}

func TestResolveCommand_Errors(t *testing.T) {
	_, err := runCommand(t, "resolve", filepath.Join(t.TempDir(), "missing.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v, want %s", err, errors.ErrCodeFileNotFound)
	}

	path := writeConfig(t, "[plot]\ncolors = [\"notacolor\"]\n")
	_, err = runCommand(t, "resolve", path)
	if !errors.Is(err, errors.ErrCodeInvalidColor) {
		t.Errorf("bad color error = %v, want %s", err, errors.ErrCodeInvalidColor)
	}
}

func TestResolveCommand_DefaultConfig(t *testing.T) {
	out, err := runCommand(t, "resolve")
	if err != nil {
		t.Fatalf("resolve error: %v", err)
	}
	if !strings.Contains(out, "(default)") || !strings.Contains(out, "#0000ff") {
		t.Errorf("default resolve output:\n%s", out)
	}
}

func TestBackendCommand(t *testing.T) {
	out, err := runCommand(t, "backend", "--no-graphviz", "--no-export")
	if err != nil {
		t.Fatalf("backend error: %v", err)
	}
	if !strings.Contains(out, "chart") {
		t.Errorf("output missing chart:\n%s", out)
	}
	if !strings.Contains(out, "graphviz unavailable") || !strings.Contains(out, "export unavailable") {
		t.Errorf("disabled components should be reported:\n%s", out)
	}
}

func TestBackendCommand_ConfigDisablesGraphviz(t *testing.T) {
	path := writeConfig(t, "[backend]\ngraphviz = false\nexport = false\n")
	out, err := runCommand(t, "--config", path, "backend")
	if err != nil {
		t.Fatalf("backend error: %v", err)
	}
	if !strings.Contains(out, "graphviz unavailable") {
		t.Errorf("config should disable graphviz:\n%s", out)
	}
}
