package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

// fakePM writes a minimal package.json on Init and records everything else.
type fakePM struct {
	initErr error
	inits   int
	calls   []string
}

func (f *fakePM) Name() string { return "yarn" }

func (f *fakePM) Init(_ context.Context, dir string) error {
	f.inits++
	if f.initErr != nil {
		return f.initErr
	}
	return os.WriteFile(filepath.Join(dir, "package.json"), []byte(`{"name":"app"}`), 0644)
}

func (f *fakePM) AddDev(_ context.Context, _ string, pkgs []string) error {
	f.calls = append(f.calls, "add "+strings.Join(pkgs, " "))
	return nil
}

func (f *fakePM) Exec(_ context.Context, _ string, bin string, args ...string) error {
	f.calls = append(f.calls, bin+" "+strings.Join(args, " "))
	return nil
}

func (f *fakePM) RunScript(script string) string { return "yarn " + script }

var errInit = errors.New("init failed")
