package pkgmgr

import (
	"context"
	"strings"
)

type call struct {
	dir  string
	name string
	args []string
}

func (c call) String() string {
	return strings.Join(append([]string{c.name}, c.args...), " ")
}

// fakeExecutor records calls and returns canned results keyed by command name.
type fakeExecutor struct {
	calls  []call
	stdout map[string]string
	fail   map[string]int
}

func (f *fakeExecutor) Run(_ context.Context, dir, name string, args ...string) (*Output, error) {
	f.calls = append(f.calls, call{dir: dir, name: name, args: args})
	out := &Output{Stdout: f.stdout[name]}
	if code, ok := f.fail[name]; ok {
		out.ExitCode = code
		out.Stderr = "error An unexpected error occurred"
		return out, &CommandError{Command: call{name: name, args: args}.String(), ExitCode: code, Stderr: out.Stderr}
	}
	return out, nil
}
