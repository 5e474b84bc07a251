// Package gate decides whether the create pipeline may write into its target
// directory: it resolves the target path, prompts before touching an existing
// directory, and wipes it when forced or confirmed.
package gate

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/fast-create/fast-create/internal/platform"
)

// Decision is the outcome of a gate check.
type Decision int

const (
	// ProceedClean means the target is absent or was just emptied.
	ProceedClean Decision = iota
	// ProceedAfterConfirm means the user agreed to continue with an existing target.
	ProceedAfterConfirm
	// Abort means the user declined; nothing was changed.
	Abort
)

func (d Decision) String() string {
	switch d {
	case ProceedClean:
		return "proceed-clean"
	case ProceedAfterConfirm:
		return "proceed-after-confirm"
	case Abort:
		return "abort"
	default:
		return "unknown"
	}
}

// Target is the directory a project is created in.
type Target struct {
	Name      string // as given on the command line, may be empty
	Dir       string // absolute path
	InCurrent bool   // no name or "." was given
}

// Resolve computes the target for name relative to cwd.
func Resolve(cwd, name string) Target {
	inCurrent := name == "" || name == "."
	dir := cwd
	switch {
	case inCurrent:
	case filepath.IsAbs(name):
		dir = filepath.Clean(name)
	default:
		dir = filepath.Join(cwd, name)
	}
	return Target{Name: name, Dir: dir, InCurrent: inCurrent}
}

// Asker is the prompting surface the gate needs.
type Asker interface {
	Confirm(message string, def bool) (bool, error)
	Select(message string, choices []string) (int, error)
}

// Gate guards the target directory.
type Gate struct {
	asker     Asker
	logger    *logrus.Logger
	highlight func(string) string
}

// Option configures a Gate.
type Option func(*Gate)

// WithHighlight styles the directory path shown in questions.
func WithHighlight(fn func(string) string) Option {
	return func(g *Gate) {
		if fn != nil {
			g.highlight = fn
		}
	}
}

// New creates a Gate that asks questions through a.
func New(a Asker, logger *logrus.Logger, opts ...Option) *Gate {
	g := &Gate{
		asker:     a,
		logger:    logger,
		highlight: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Check decides whether to proceed with t. With force the target's contents
// are removed without asking. Removal failures are returned as errors.
func (g *Gate) Check(t Target, force bool) (Decision, error) {
	if force {
		g.logger.Debugf("Force: removing contents of %s", t.Dir)
		if err := platform.RemoveContents(t.Dir); err != nil {
			return Abort, fmt.Errorf("clearing %s: %w", t.Dir, err)
		}
		return ProceedClean, nil
	}

	exists, err := platform.Exists(t.Dir)
	if err != nil {
		return Abort, fmt.Errorf("checking %s: %w", t.Dir, err)
	}
	if !exists {
		return ProceedClean, nil
	}

	if t.InCurrent {
		ok, err := g.asker.Confirm(
			fmt.Sprintf("Create the project in the current folder %s?", g.highlight(t.Dir)), true)
		if err != nil {
			return Abort, err
		}
		if !ok {
			return Abort, nil
		}
		return ProceedAfterConfirm, nil
	}

	choice, err := g.asker.Select(
		fmt.Sprintf("The folder %s already exists. Overwrite it?", g.highlight(t.Dir)),
		[]string{"confirm", "cancel"})
	if err != nil {
		return Abort, err
	}
	if choice != 0 {
		return Abort, nil
	}

	g.logger.Debugf("Removing existing directory %s", t.Dir)
	if err := os.RemoveAll(t.Dir); err != nil {
		return Abort, fmt.Errorf("removing %s: %w", t.Dir, err)
	}
	return ProceedAfterConfirm, nil
}
