package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/fast-create/fast-create/internal/pkgmgr"
)

// fakeExecutor answers package manager and node invocations without running
// anything. Init commands write a minimal package.json into dir.
type fakeExecutor struct {
	calls       []string
	nodeVersion string
	fail        map[string]bool
}

func (f *fakeExecutor) Run(_ context.Context, dir, name string, args ...string) (*pkgmgr.Output, error) {
	line := strings.Join(append([]string{name}, args...), " ")
	f.calls = append(f.calls, line)

	if f.fail[name] {
		return &pkgmgr.Output{ExitCode: 1, Stderr: "boom"},
			&pkgmgr.CommandError{Command: line, ExitCode: 1, Stderr: "boom"}
	}
	if name == "node" {
		return &pkgmgr.Output{Stdout: f.nodeVersion + "\n"}, nil
	}
	if len(args) > 0 && args[0] == "init" && name != "npx" {
		pkg := `{"name":"` + filepath.Base(dir) + `","version":"1.0.0"}`
		if err := os.WriteFile(filepath.Join(dir, "package.json"), []byte(pkg), 0644); err != nil {
			return nil, err
		}
	}
	return &pkgmgr.Output{}, nil
}

type testEnv struct {
	app  *app
	ex   *fakeExecutor
	cwd  string
	path string
	miss map[string]bool
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		ex:   &fakeExecutor{nodeVersion: "v18.17.0", fail: map[string]bool{}},
		cwd:  t.TempDir(),
		path: filepath.Join(t.TempDir(), "config.yaml"),
		miss: map[string]bool{},
	}

	a := newApp("1.2.3", "0123456789abcdef", "2026-01-02")
	a.newExecutor = func(io.Writer, io.Writer, *logrus.Logger) pkgmgr.Executor { return env.ex }
	a.lookPath = func(name string) (string, error) {
		if env.miss[name] {
			return "", errors.New("executable file not found in $PATH")
		}
		return "/usr/bin/" + name, nil
	}
	a.configPath = func() string { return env.path }
	a.getwd = func() (string, error) { return env.cwd, nil }
	env.app = a
	return env
}

// run executes the command tree with stdin and returns stdout.
func (e *testEnv) run(stdin string, args ...string) (string, error) {
	cmd := e.app.newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
