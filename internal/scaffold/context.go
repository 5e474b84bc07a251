package scaffold

import (
	"io"

	"github.com/sirupsen/logrus"

	"github.com/fast-create/fast-create/internal/manifest"
	"github.com/fast-create/fast-create/internal/pkgmgr"
	"github.com/fast-create/fast-create/internal/tooling"
)

// Context is the mutable state shared by every writer in one run.
type Context struct {
	Dir            string
	Selection      tooling.Selection
	PackageManager pkgmgr.PackageManager
	Logger         *logrus.Logger

	// Dependencies lists dev dependencies in the order writers appended them.
	Dependencies []string
	// Fragments holds top-level package.json entries to merge last.
	Fragments *manifest.Fragments
	// Files lists the files written, relative to Dir.
	Files []string
}

// NewContext returns a Context for dir. A nil logger discards output.
func NewContext(dir string, sel tooling.Selection, pm pkgmgr.PackageManager, logger *logrus.Logger, mergeHooks bool) *Context {
	if logger == nil {
		logger = logrus.New()
		logger.SetOutput(io.Discard)
	}
	return &Context{
		Dir:            dir,
		Selection:      sel,
		PackageManager: pm,
		Logger:         logger,
		Fragments:      manifest.NewFragments(mergeHooks),
	}
}

// AddDependencies appends dev dependencies to the install batch.
func (c *Context) AddDependencies(names ...string) {
	c.Dependencies = append(c.Dependencies, names...)
}
