package pkgmgr

import (
	"context"
	"fmt"
	"strings"
)

// PackageManager drives one JavaScript package manager.
type PackageManager interface {
	// Name returns the identifier, e.g. "yarn".
	Name() string
	// Init writes a default package.json in dir.
	Init(ctx context.Context, dir string) error
	// AddDev installs pkgs as dev dependencies in a single invocation.
	AddDev(ctx context.Context, dir string, pkgs []string) error
	// Exec runs a locally installed binary, e.g. "lerna init".
	Exec(ctx context.Context, dir, bin string, args ...string) error
	// RunScript returns the command line that runs a package.json script.
	RunScript(script string) string
}

// Supported package manager identifiers.
const (
	NPM  = "npm"
	Yarn = "yarn"
	PNPM = "pnpm"
)

// Default is used when no package manager is configured.
const Default = Yarn

// Names returns the supported identifiers.
func Names() []string {
	return []string{NPM, Yarn, PNPM}
}

// manager is a table-driven PackageManager; the managers differ only in
// their argument spelling.
type manager struct {
	name       string
	initArgs   []string
	addDevArgs []string
	execBin    string
	execArgs   []string
	runPrefix  string
	exec       Executor
}

// Dispatch returns the PackageManager for name, running commands through ex.
// Unknown names yield a manager whose every command fails.
func Dispatch(name string, ex Executor) PackageManager {
	switch name {
	case NPM:
		return &manager{
			name:       NPM,
			initArgs:   []string{"init", "-y"},
			addDevArgs: []string{"install", "--save-dev"},
			execBin:    "npx",
			runPrefix:  "npm run ",
			exec:       ex,
		}
	case Yarn:
		return &manager{
			name:       Yarn,
			initArgs:   []string{"init", "-y"},
			addDevArgs: []string{"add", "-D"},
			execBin:    "yarn",
			runPrefix:  "yarn ",
			exec:       ex,
		}
	case PNPM:
		return &manager{
			name:       PNPM,
			initArgs:   []string{"init"},
			addDevArgs: []string{"add", "-D"},
			execBin:    "pnpm",
			execArgs:   []string{"exec"},
			runPrefix:  "pnpm ",
			exec:       ex,
		}
	default:
		return &unknownManager{name: name}
	}
}

func (m *manager) Name() string { return m.name }

func (m *manager) Init(ctx context.Context, dir string) error {
	_, err := m.exec.Run(ctx, dir, m.name, m.initArgs...)
	if err != nil {
		return fmt.Errorf("initializing package.json: %w", err)
	}
	return nil
}

func (m *manager) AddDev(ctx context.Context, dir string, pkgs []string) error {
	if len(pkgs) == 0 {
		return nil
	}
	args := append(append([]string{}, m.addDevArgs...), pkgs...)
	if _, err := m.exec.Run(ctx, dir, m.name, args...); err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	return nil
}

func (m *manager) Exec(ctx context.Context, dir, bin string, args ...string) error {
	full := append(append(append([]string{}, m.execArgs...), bin), args...)
	if _, err := m.exec.Run(ctx, dir, m.execBin, full...); err != nil {
		return fmt.Errorf("running %s: %w", strings.Join(append([]string{bin}, args...), " "), err)
	}
	return nil
}

func (m *manager) RunScript(script string) string {
	return m.runPrefix + script
}

// unknownManager is returned when the identifier is not recognized.
type unknownManager struct {
	name string
}

func (u *unknownManager) err() error {
	return fmt.Errorf("unknown package manager %q: supported are %s", u.name, strings.Join(Names(), ", "))
}

func (u *unknownManager) Name() string { return u.name }

func (u *unknownManager) Init(context.Context, string) error { return u.err() }

func (u *unknownManager) AddDev(context.Context, string, []string) error { return u.err() }

func (u *unknownManager) Exec(context.Context, string, string, ...string) error { return u.err() }

func (u *unknownManager) RunScript(script string) string { return u.name + " run " + script }

// IsSupported reports whether name is a known package manager.
func IsSupported(name string) bool {
	for _, n := range Names() {
		if n == name {
			return true
		}
	}
	return false
}
