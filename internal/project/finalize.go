package project

import (
	"context"
	"path/filepath"

	"github.com/fast-create/fast-create/internal/config"
	"github.com/fast-create/fast-create/internal/manifest"
	"github.com/fast-create/fast-create/internal/pkgmgr"
	"github.com/fast-create/fast-create/internal/scaffold"
	"github.com/fast-create/fast-create/internal/tooling"
)

// Finalize installs the accumulated dependencies in one batch, initializes
// lerna when selected, then rewrites package.json: the scripts section is
// replaced outright and the writers' fragments are merged over the top level.
func Finalize(ctx context.Context, c *scaffold.Context, pm pkgmgr.PackageManager, settings *config.Settings) error {
	if settings == nil {
		settings = config.Defaults()
	}

	deps, err := pkgmgr.ApplyPins(c.Dependencies, settings.Versions)
	if err != nil {
		return err
	}
	c.Logger.WithField("count", len(deps)).Debug("installing dev dependencies")
	if err := pm.AddDev(ctx, c.Dir, deps); err != nil {
		return err
	}

	if c.Selection.Has(tooling.Monorepo) {
		if err := pm.Exec(ctx, c.Dir, "lerna", "init"); err != nil {
			return err
		}
	}

	path := filepath.Join(c.Dir, manifest.FileName)
	doc, err := manifest.Read(path)
	if err != nil {
		return err
	}
	doc.SetScripts(manifest.Scripts(c.Selection, pm.RunScript))
	doc.Merge(c.Fragments)
	return doc.Write(path)
}
