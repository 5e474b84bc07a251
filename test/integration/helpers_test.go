//go:build integration

package integration_test

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/fast-create/fast-create/internal/output"
	"github.com/fast-create/fast-create/internal/pkgmgr"
	"github.com/fast-create/fast-create/internal/project"
	"github.com/fast-create/fast-create/internal/prompt"
)

// fakeManagerScript stands in for npm, yarn and pnpm. It appends its
// arguments to $FAKE_LOG, writes package.json on "init" and exits 1 when its
// first argument equals $FAKE_FAIL.
const fakeManagerScript = `#!/bin/sh
echo "$(basename "$0") $*" >> "$FAKE_LOG"
if [ -n "$FAKE_FAIL" ] && [ "$1" = "$FAKE_FAIL" ]; then
  echo "error Command failed" >&2
  exit 1
fi
if [ "$1" = "init" ]; then
  printf '{\n  "name": "%s",\n  "version": "1.0.0",\n  "license": "MIT"\n}\n' "$(basename "$PWD")" > package.json
fi
`

// testEnv holds the sandbox for one test.
type testEnv struct {
	HomeDir    string // FAST_CREATE_HOME
	BinDir     string // fake tools, first on PATH
	ProjectDir string // working directory for create
	LogFile    string // invocations recorded by the fake tools
}

// setupTestEnv creates isolated directories, installs fake package managers
// and points PATH and FAST_CREATE_HOME at them. Env vars are restored after
// the test.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake package managers are shell scripts")
	}

	env := &testEnv{
		HomeDir:    t.TempDir(),
		BinDir:     t.TempDir(),
		ProjectDir: t.TempDir(),
	}
	env.LogFile = filepath.Join(env.HomeDir, "calls.log")

	for _, name := range []string{"npm", "npx", "yarn", "pnpm"} {
		writeFile(t, filepath.Join(env.BinDir, name), fakeManagerScript)
		if err := os.Chmod(filepath.Join(env.BinDir, name), 0755); err != nil {
			t.Fatalf("chmod %s: %v", name, err)
		}
	}

	t.Setenv("FAST_CREATE_HOME", env.HomeDir)
	t.Setenv("FAKE_LOG", env.LogFile)
	t.Setenv("FAKE_FAIL", "")
	t.Setenv("PATH", env.BinDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return env
}

// create runs the pipeline with the real shell executor. stdin feeds the
// prompts.
func (e *testEnv) create(t *testing.T, manager, stdin string, opts project.Options) (*project.Result, string, error) {
	t.Helper()
	if opts.Cwd == "" {
		opts.Cwd = e.ProjectDir
	}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	ex := &pkgmgr.ShellExecutor{Stdout: &out, Stderr: &out, Logger: logger}
	res, err := project.Create(t.Context(), opts, project.Deps{
		Prompter:       prompt.New(strings.NewReader(stdin), &out),
		PackageManager: pkgmgr.Dispatch(manager, ex),
		Logger:         logger,
		Printer:        output.NewPrinter(&out),
	})
	return res, out.String(), err
}

// calls returns the recorded fake tool invocations.
func (e *testEnv) calls(t *testing.T) []string {
	t.Helper()
	data, err := os.ReadFile(e.LogFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		t.Fatalf("reading call log: %v", err)
	}
	return strings.Split(strings.TrimSpace(string(data)), "\n")
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s", path)
	}
}

func assertFileNotExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err == nil {
		t.Errorf("expected file to NOT exist: %s", path)
	}
}

func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q\ncontent:\n%s", path, substr, data)
	}
}
