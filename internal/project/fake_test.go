package project

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
)

type fakePrompter struct {
	confirm   bool
	selectIdx int
	picked    []int

	confirms int
	selects  int
	multis   int
}

func (f *fakePrompter) Confirm(string, bool) (bool, error) {
	f.confirms++
	return f.confirm, nil
}

func (f *fakePrompter) Select(string, []string) (int, error) {
	f.selects++
	return f.selectIdx, nil
}

func (f *fakePrompter) MultiSelect(string, []string) ([]int, error) {
	f.multis++
	return f.picked, nil
}

func (f *fakePrompter) asked() int { return f.confirms + f.selects }

// fakePM writes a package.json on Init and records install and exec calls.
type fakePM struct {
	manifest string
	addErr   error
	installs [][]string
	execs    []string
}

func (f *fakePM) Name() string { return "yarn" }

func (f *fakePM) Init(_ context.Context, dir string) error {
	content := f.manifest
	if content == "" {
		content = `{"name":"myapp","version":"1.0.0","main":"index.js","license":"MIT"}`
	}
	return os.WriteFile(filepath.Join(dir, "package.json"), []byte(content), 0644)
}

func (f *fakePM) AddDev(_ context.Context, _ string, pkgs []string) error {
	f.installs = append(f.installs, pkgs)
	return f.addErr
}

func (f *fakePM) Exec(_ context.Context, _ string, bin string, args ...string) error {
	f.execs = append(f.execs, strings.Join(append([]string{bin}, args...), " "))
	return nil
}

func (f *fakePM) RunScript(script string) string { return "yarn " + script }

var errInstall = errors.New("yarn add exited with status 1")
