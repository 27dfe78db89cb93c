package cli

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	cserrors "github.com/matzehuels/cargoscan/pkg/errors"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	c := New(&stdout, &stderr, LogInfo)
	root := c.RootCommand()
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func scenarioTree(t *testing.T) (root, manifestPath string) {
	t.Helper()
	root = t.TempDir()
	manifestPath = filepath.Join(root, "Cargo.toml")
	writeFile(t, manifestPath, `
[dependencies]
serde = "1.0"
local_lib = { path = "../local_lib" }

[dev-dependencies]
mockall = "0.11"
`)
	return root, manifestPath
}

func TestScan_DefaultJSON(t *testing.T) {
	root, p := scenarioTree(t)

	stdout, _, err := execute(t, root)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	want := `[
  {
    "project": "` + p + `",
    "section": "dependencies",
    "name": "serde",
    "version": "1.0"
  },
  {
    "project": "` + p + `",
    "section": "dev-dependencies",
    "name": "mockall",
    "version": "0.11"
  }
]
found 2 deps !
`
	if diff := cmp.Diff(want, stdout); diff != "" {
		t.Errorf("stdout mismatch (-want +got):\n%s", diff)
	}
}

func TestScan_CSVAndMarkdown(t *testing.T) {
	root, p := scenarioTree(t)

	stdout, _, err := execute(t, root, "csv")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	wantCSV := "project,section,name,version\n" +
		p + ",dependencies,serde,1.0\n" +
		p + ",dev-dependencies,mockall,0.11\n" +
		"found 2 deps !\n"
	if diff := cmp.Diff(wantCSV, stdout); diff != "" {
		t.Errorf("csv mismatch (-want +got):\n%s", diff)
	}

	for _, sel := range []string{"md", "markdown"} {
		stdout, _, err := execute(t, root, sel)
		if err != nil {
			t.Fatalf("execute %s failed: %v", sel, err)
		}
		if !strings.HasPrefix(stdout, "| Project | Section | Dependency | Version |\n") {
			t.Errorf("%s output missing table header: %q", sel, stdout)
		}
		if !strings.Contains(stdout, "| `"+p+"` | `dependencies` | `serde` | `1.0` |\n") {
			t.Errorf("%s output missing serde row: %q", sel, stdout)
		}
	}
}

func TestScan_UnsupportedFormat(t *testing.T) {
	root, _ := scenarioTree(t)

	stdout, _, err := execute(t, root, "xml")
	if !cserrors.Is(err, cserrors.ErrCodeInvalidFormat) {
		t.Fatalf("error = %v, want %s", err, cserrors.ErrCodeInvalidFormat)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want no report", stdout)
	}
	if code := ExitCode(err); code != 2 {
		t.Errorf("ExitCode = %d, want 2", code)
	}

	var msg bytes.Buffer
	PrintError(&msg, err)
	if !strings.Contains(msg.String(), "unsupported format: 'xml'") {
		t.Errorf("PrintError output = %q, want format name", msg.String())
	}
}

func TestScan_Idempotent(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a", "Cargo.toml"), "[dependencies]\nzeta = \"1\"\nalpha = { git = \"https://example.com/alpha\" }\n")
	writeFile(t, filepath.Join(root, "b", "Cargo.toml"), "[workspace.dependencies]\nrand = \"0.8\"\n")

	for _, format := range []string{"json", "csv", "md"} {
		first, _, err := execute(t, root, format)
		if err != nil {
			t.Fatal(err)
		}
		second, _, err := execute(t, root, format)
		if err != nil {
			t.Fatal(err)
		}
		if first != second {
			t.Errorf("%s output differs between runs", format)
		}
	}
}

func TestScan_OutputFile(t *testing.T) {
	root, _ := scenarioTree(t)
	out := filepath.Join(t.TempDir(), "deps.csv")

	stdout, _, err := execute(t, root, "csv", "-o", out)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if stdout != "" {
		t.Errorf("stdout = %q, want empty when writing to a file", stdout)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(string(data), "found 2 deps !\n") {
		t.Errorf("report file = %q", data)
	}
}

func TestScan_Exclude(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Cargo.toml"), "[dependencies]\nserde = \"1\"\n")
	writeFile(t, filepath.Join(root, "target", "pkg", "Cargo.toml"), "[dependencies]\nvendored = \"9\"\n")

	stdout, _, err := execute(t, root, "csv", "--exclude", "target")
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if strings.Contains(stdout, "vendored") {
		t.Errorf("excluded directory was scanned: %q", stdout)
	}
	if !strings.HasSuffix(stdout, "found 1 deps !\n") {
		t.Errorf("stdout = %q", stdout)
	}

	_, _, err = execute(t, root, "csv", "--exclude", "a/b")
	if !cserrors.Is(err, cserrors.ErrCodeInvalidPath) {
		t.Errorf("error = %v, want %s", err, cserrors.ErrCodeInvalidPath)
	}
}

func TestScan_ConfigFile(t *testing.T) {
	root, _ := scenarioTree(t)
	writeFile(t, filepath.Join(root, "target", "Cargo.toml"), "[dependencies]\nvendored = \"9\"\n")

	cfg := filepath.Join(t.TempDir(), "cargoscan.yaml")
	writeFile(t, cfg, "format: csv\nexclude:\n  - target\n")

	stdout, _, err := execute(t, root, "--config", cfg)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "project,section,name,version\n") {
		t.Errorf("config format not applied: %q", stdout)
	}
	if strings.Contains(stdout, "vendored") {
		t.Errorf("config exclude not applied: %q", stdout)
	}

	// A positional format overrides the config file.
	stdout, _, err = execute(t, root, "md", "--config", cfg)
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !strings.HasPrefix(stdout, "| Project |") {
		t.Errorf("positional format not applied: %q", stdout)
	}
}

func TestScan_MissingConfigFile(t *testing.T) {
	root, _ := scenarioTree(t)

	_, _, err := execute(t, root, "--config", filepath.Join(root, "nope.yaml"))
	if !cserrors.Is(err, cserrors.ErrCodeInvalidInput) {
		t.Errorf("error = %v, want %s", err, cserrors.ErrCodeInvalidInput)
	}
}

func TestScan_EmptyTreeWarns(t *testing.T) {
	stdout, stderr, err := execute(t, t.TempDir())
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if stdout != "[]\nfound 0 deps !\n" {
		t.Errorf("stdout = %q", stdout)
	}
	if !strings.Contains(stderr, "no Cargo.toml found") {
		t.Errorf("stderr = %q, want warning", stderr)
	}
}

func TestScan_TooManyArgs(t *testing.T) {
	if _, _, err := execute(t, ".", "json", "extra"); err == nil {
		t.Error("expected error for three positional args")
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"canceled", context.Canceled, 130},
		{"wrapped canceled", errors.Join(errors.New("scan"), context.Canceled), 130},
		{"format", cserrors.New(cserrors.ErrCodeInvalidFormat, "x"), 2},
		{"input", cserrors.New(cserrors.ErrCodeInvalidInput, "x"), 2},
		{"path", cserrors.New(cserrors.ErrCodeInvalidPath, "x"), 2},
		{"internal", cserrors.New(cserrors.ErrCodeInternal, "x"), 1},
		{"plain", errors.New("boom"), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}
