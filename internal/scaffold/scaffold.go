package scaffold

import (
	"context"
	"fmt"

	"github.com/fast-create/fast-create/internal/tooling"
)

// Writer contributes one tooling integration to a new project.
type Writer interface {
	Name() string
	// Applies reports whether the writer has anything to do for sel.
	Applies(sel tooling.Selection) bool
	Write(ctx context.Context, c *Context) error
}

// Writers returns every writer in execution order.
func Writers() []Writer {
	return []Writer{
		manifestInit{},
		compilerConfig{},
		commitLint{},
		lintFormat{},
		testRunner{},
		monorepo{},
	}
}

// Run executes the applicable writers in order. The first failure stops the
// run; files already written stay on disk.
func Run(ctx context.Context, c *Context) error {
	for _, w := range Writers() {
		if !w.Applies(c.Selection) {
			c.Logger.WithField("writer", w.Name()).Debug("skipping writer")
			continue
		}
		c.Logger.WithField("writer", w.Name()).Debug("running writer")
		if err := w.Write(ctx, c); err != nil {
			return fmt.Errorf("%s: %w", w.Name(), err)
		}
	}
	return nil
}
