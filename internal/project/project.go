package project

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/fast-create/fast-create/internal/config"
	"github.com/fast-create/fast-create/internal/gate"
	"github.com/fast-create/fast-create/internal/output"
	"github.com/fast-create/fast-create/internal/pkgmgr"
	"github.com/fast-create/fast-create/internal/platform"
	"github.com/fast-create/fast-create/internal/scaffold"
	"github.com/fast-create/fast-create/internal/tooling"
)

// ErrAborted is returned when the user declines to use the target directory.
var ErrAborted = errors.New("aborted by user")

// Prompter asks every question the pipeline needs.
type Prompter interface {
	gate.Asker
	tooling.Chooser
}

// Options are the per-run inputs from the command line.
type Options struct {
	Name  string
	Force bool
	Cwd   string
	// Tools skips the tooling prompt when set.
	Tools *tooling.Selection
}

// Deps are the collaborators a run talks to.
type Deps struct {
	Prompter       Prompter
	PackageManager pkgmgr.PackageManager
	Settings       *config.Settings
	Logger         *logrus.Logger
	Printer        *output.Printer
}

// Result describes a created project.
type Result struct {
	Dir          string
	Selection    tooling.Selection
	Dependencies []string
	Files        []string
}

// Create scaffolds a project according to opts. A declined overwrite returns
// ErrAborted before anything on disk changes. Later failures leave whatever
// was already written in place.
func Create(ctx context.Context, opts Options, d Deps) (*Result, error) {
	d = d.withDefaults()

	target := gate.Resolve(opts.Cwd, opts.Name)
	g := gate.New(d.Prompter, d.Logger, gate.WithHighlight(d.Printer.Path))

	decision, err := g.Check(target, opts.Force)
	if err != nil {
		return nil, fmt.Errorf("checking target directory: %w", err)
	}
	if decision == gate.Abort {
		return nil, ErrAborted
	}
	d.Logger.WithFields(logrus.Fields{
		"dir":      target.Dir,
		"decision": decision.String(),
	}).Debug("target directory resolved")

	var sel tooling.Selection
	if opts.Tools != nil {
		sel = *opts.Tools
	} else {
		sel, err = tooling.Ask(d.Prompter)
		if err != nil {
			return nil, err
		}
	}
	d.Logger.WithField("tools", sel.String()).Debug("tooling selected")

	if err := platform.EnsureDir(target.Dir); err != nil {
		return nil, err
	}

	d.Printer.Heading("Creating project in %s", d.Printer.Path(target.Dir))
	c := scaffold.NewContext(target.Dir, sel, d.PackageManager, d.Logger, d.Settings.Hooks.Merge)
	if err := scaffold.Run(ctx, c); err != nil {
		return nil, err
	}

	d.Printer.Heading("Start Installing Dependencies")
	if err := Finalize(ctx, c, d.PackageManager, d.Settings); err != nil {
		return nil, err
	}

	return &Result{
		Dir:          target.Dir,
		Selection:    sel,
		Dependencies: c.Dependencies,
		Files:        c.Files,
	}, nil
}

func (d Deps) withDefaults() Deps {
	if d.Settings == nil {
		d.Settings = config.Defaults()
	}
	if d.Logger == nil {
		d.Logger = logrus.New()
		d.Logger.SetOutput(io.Discard)
	}
	if d.Printer == nil {
		d.Printer = output.NewPrinter(io.Discard)
	}
	return d
}
