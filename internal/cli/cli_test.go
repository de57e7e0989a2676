package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	gmlerrors "github.com/matzehuels/minigraphml/pkg/errors"
)

const sampleGraph = `<graphml>
  <graph id="G" edgedefault="directed">
    <node id="a"/><node id="b"/><node id="c"/>
    <edge id="ab" source="a" target="b"><directed>true</directed></edge>
    <edge id="bc" source="b" target="c"/>
  </graph>
</graphml>
`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func lineWith(out, key string) string {
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, key) {
			return line
		}
	}
	return ""
}

// execute runs the root command and returns its stdout, stderr and log output.
func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var logs, stdout, stderr bytes.Buffer
	c := New(&logs, LogDebug)
	root := c.RootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String() + logs.String(), err
}

func TestCheck(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	out, _, err := execute(t, "check", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	for _, want := range []string{"is valid", "nodes", "3", "1 directed, 1 unspecified"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheckErrors(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode gmlerrors.Code
	}{
		{"Malformed", `<graphml><graph>`, gmlerrors.ErrCodeParse},
		{"Dangling", `<graphml><graph id="G"><edge id="e" source="x" target="y"/></graph></graphml>`, gmlerrors.ErrCodeConsistency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "bad.graphml", tt.content)
			_, _, err := execute(t, "check", path)
			if !gmlerrors.Is(err, tt.wantCode) {
				t.Errorf("code = %v, want %v (%v)", gmlerrors.GetCode(err), tt.wantCode, err)
			}
		})
	}

	_, _, err := execute(t, "check", filepath.Join(t.TempDir(), "missing.graphml"))
	if gmlerrors.ExitCode(err) != 2 {
		t.Errorf("ExitCode = %d, want 2", gmlerrors.ExitCode(err))
	}
}

func TestCheckWithConfig(t *testing.T) {
	dup := `<graphml><graph id="G"><node id="a"/><node id="a"/></graph></graphml>`
	path := writeFile(t, "dup.graphml", dup)

	if _, _, err := execute(t, "check", path); !gmlerrors.Is(err, gmlerrors.ErrCodeConsistency) {
		t.Fatalf("default config: error = %v, want consistency error", err)
	}

	cfg := writeFile(t, "cfg.toml", "[load]\nduplicates = \"last-wins\"\n")
	if _, logs, err := execute(t, "--config", cfg, "check", path); err != nil {
		t.Fatalf("last-wins config: %v\n%s", err, logs)
	}

	bad := writeFile(t, "bad.toml", "[load]\nduplicates = \"sometimes\"\n")
	_, _, err := execute(t, "--config", bad, "check", path)
	if !gmlerrors.Is(err, gmlerrors.ErrCodeInvalidConfig) {
		t.Errorf("bad config: code = %v, want %v", gmlerrors.GetCode(err), gmlerrors.ErrCodeInvalidConfig)
	}
}

func TestFmt(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	out, _, err := execute(t, "fmt", path)
	if err != nil {
		t.Fatalf("fmt: %v", err)
	}
	if !strings.HasPrefix(out, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("output missing XML header:\n%s", out)
	}
	if !strings.Contains(out, "    <node id=\"a\"></node>\n") {
		t.Errorf("output not indented:\n%s", out)
	}

	// Formatting the formatted output is a no-op.
	again := writeFile(t, "again.graphml", out)
	out2, _, err := execute(t, "fmt", again)
	if err != nil {
		t.Fatalf("fmt again: %v", err)
	}
	if out2 != out {
		t.Errorf("fmt is not idempotent:\n%s\n---\n%s", out, out2)
	}
}

func TestFmtInPlace(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	if _, _, err := execute(t, "fmt", "-w", path); err != nil {
		t.Fatalf("fmt -w: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "</graphml>\n") || string(data) == sampleGraph {
		t.Errorf("file not rewritten:\n%s", data)
	}

	_, _, err = execute(t, "fmt", "-w", "-o", "x.graphml", path)
	if !gmlerrors.Is(err, gmlerrors.ErrCodeInvalidInput) {
		t.Errorf("-w with -o: code = %v, want %v", gmlerrors.GetCode(err), gmlerrors.ErrCodeInvalidInput)
	}
}

func TestDot(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	out, _, err := execute(t, "dot", "--rankdir", "LR", path)
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	for _, want := range []string{"digraph G {", "rankdir=LR;", `v0 [label="a"];`, `v1 -> v2 [label="bc"];`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	out, _, err = execute(t, "dot", "--edge-labels=false", path)
	if err != nil {
		t.Fatalf("dot: %v", err)
	}
	if strings.Contains(out, `label="ab"`) {
		t.Errorf("edge labels printed with --edge-labels=false:\n%s", out)
	}

	if _, _, err := execute(t, "dot", "--rankdir", "sideways", path); !gmlerrors.Is(err, gmlerrors.ErrCodeInvalidInput) {
		t.Errorf("bad rankdir: code = %v, want %v", gmlerrors.GetCode(err), gmlerrors.ErrCodeInvalidInput)
	}
}

func TestDotSVG(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	dest := filepath.Join(t.TempDir(), "g.svg")
	if _, _, err := execute(t, "dot", "--svg", "-o", dest, path); err != nil {
		t.Fatalf("dot --svg: %v", err)
	}
	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "<svg") {
		t.Error("output missing <svg> tag")
	}
}

func TestStats(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	out, _, err := execute(t, "stats", "--order", path)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if line := lineWith(out, "acyclic"); !strings.Contains(line, "yes") {
		t.Errorf("acyclic line = %q, want yes", line)
	}
	for _, want := range []string{"components", "a b c"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	cyclic := writeFile(t, "cyclic.graphml",
		`<graphml><graph id="G"><node id="a"/><node id="b"/><edge id="x" source="a" target="b"/><edge id="y" source="b" target="a"/></graph></graphml>`)
	out, _, err = execute(t, "stats", cyclic)
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if line := lineWith(out, "acyclic"); !strings.Contains(line, "no") {
		t.Errorf("acyclic line = %q, want no", line)
	}
}

func TestVerboseLogsStages(t *testing.T) {
	path := writeFile(t, "g.graphml", sampleGraph)
	_, logs, err := execute(t, "check", path)
	if err != nil {
		t.Fatalf("check: %v", err)
	}
	if !strings.Contains(logs, "validated graph") {
		t.Errorf("debug log missing stage:\n%s", logs)
	}
}
