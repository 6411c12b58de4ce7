package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/spokeplot/pkg/errors"
)

func TestRootCommand(t *testing.T) {
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()

	want := []string{"show", "sniff", "render", "preview", "completion"}
	for _, name := range want {
		cmd, _, err := root.Find([]string{name})
		if err != nil || cmd.Name() != name {
			t.Errorf("subcommand %q not registered", name)
		}
	}
	if !root.SilenceUsage {
		t.Error("root command should silence usage on errors")
	}
}

func TestRenderCommand(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "countries.txt")
	if err := os.WriteFile(in, []byte("France\t10.5\nGermany\t20.0\n"), 0644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out", "diagram.svg")
	if err := os.Mkdir(filepath.Dir(out), 0755); err != nil {
		t.Fatal(err)
	}

	var logs bytes.Buffer
	root := New(&logs, LogInfo).RootCommand()
	root.SetArgs([]string{"render", in, "-o", out, "-f", "svg,json", "--normalize", "--color", "red"})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("render error: %v", err)
	}

	svg, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(svg, []byte(`r="5.25" stroke="red"`)) {
		t.Errorf("unexpected SVG:\n%s", svg)
	}
	if _, err := os.Stat(filepath.Join(dir, "out", "diagram.json")); err != nil {
		t.Errorf("json output missing: %v", err)
	}
	if !bytes.Contains(logs.Bytes(), []byte("Rendered")) {
		t.Errorf("expected progress log, got %q", logs.String())
	}
}

func TestRenderCommandErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(bad, []byte("OnlyLabel\n"), 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
		code errors.Code
	}{
		{"malformed", []string{"render", bad}, errors.ErrCodeMalformedRecord},
		{"unsupported", []string{"render", filepath.Join(dir, "data.xls")}, errors.ErrCodeUnsupportedFormat},
		{"bad style", []string{"render", bad, "--line-width", "11"}, errors.ErrCodeInvalidStyle},
		{"bad format", []string{"render", bad, "-f", "gif"}, errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := New(&bytes.Buffer{}, LogInfo).RootCommand()
			root.SetArgs(tt.args)
			root.SetErr(&bytes.Buffer{})
			err := root.ExecuteContext(context.Background())
			if !errors.Is(err, tt.code) {
				t.Errorf("error = %v, want %s", err, tt.code)
			}
		})
	}
	if _, err := os.Stat(filepath.Join(dir, "bad.svg")); !os.IsNotExist(err) {
		t.Error("failed render should not leave an output file")
	}
}

func TestSniffCommand(t *testing.T) {
	in := filepath.Join(t.TempDir(), "prices.csv")
	if err := os.WriteFile(in, []byte("a;1,5\nb;2,0\nc,3\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	root := New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&out)
	root.SetArgs([]string{"sniff", in})
	if err := root.ExecuteContext(context.Background()); err != nil {
		t.Fatalf("sniff error: %v", err)
	}
	for _, want := range []string{"comma-decimal/semicolon-delimited", "lines", "3", "';'"} {
		if !bytes.Contains(out.Bytes(), []byte(want)) {
			t.Errorf("sniff output missing %q:\n%s", want, out.String())
		}
	}

	root = New(&bytes.Buffer{}, LogInfo).RootCommand()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"sniff", filepath.Join(t.TempDir(), "missing.csv")})
	if err := root.ExecuteContext(context.Background()); !errors.Is(err, errors.ErrCodeIO) {
		t.Errorf("sniff missing file error = %v, want IO_FAILURE", err)
	}
}

func TestVerboseFlag(t *testing.T) {
	in := filepath.Join(t.TempDir(), "data.txt")
	if err := os.WriteFile(in, []byte("a\t1\n"), 0644); err != nil {
		t.Fatal(err)
	}

	for _, tt := range []struct {
		args []string
		want log.Level
	}{
		{[]string{"sniff", in}, LogInfo},
		{[]string{"-v", "sniff", in}, LogDebug},
		{[]string{"sniff", "--verbose", in}, LogDebug},
	} {
		c := New(&bytes.Buffer{}, LogInfo)
		root := c.RootCommand()
		root.SetOut(&bytes.Buffer{})
		root.SetArgs(tt.args)
		if err := root.ExecuteContext(context.Background()); err != nil {
			t.Fatalf("%v: %v", tt.args, err)
		}
		if got := c.Logger.GetLevel(); got != tt.want {
			t.Errorf("%v: level = %v, want %v", tt.args, got, tt.want)
		}
	}
}
