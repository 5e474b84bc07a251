package scaffold

import (
	"context"

	"github.com/fast-create/fast-create/internal/manifest"
	"github.com/fast-create/fast-create/internal/tooling"
)

// Files written by the writers.
const (
	FileTSConfig       = "tsconfig.json"
	FileCommitLint     = "commitlint.config.js"
	FilePrettierRC     = ".prettierrc.json"
	FileESLintRC       = ".eslintrc.js"
	FilePrettierIgnore = ".prettierignore"
	FileJestConfig     = "jest.config.js"
)

// Git hooks registered with the hook runner.
const (
	HookCommitMsg = "commit-msg"
	HookPreCommit = "pre-commit"
)

const stagedGlob = "*.{js,json,md,tsx,ts}"

// manifestInit creates package.json through the package manager.
type manifestInit struct{}

func (manifestInit) Name() string                   { return "package manifest" }
func (manifestInit) Applies(tooling.Selection) bool { return true }

func (manifestInit) Write(ctx context.Context, c *Context) error {
	if err := c.PackageManager.Init(ctx, c.Dir); err != nil {
		return err
	}
	c.Files = append(c.Files, manifest.FileName)
	return nil
}

type compilerConfig struct{}

func (compilerConfig) Name() string                   { return "typescript" }
func (compilerConfig) Applies(tooling.Selection) bool { return true }

func (compilerConfig) Write(_ context.Context, c *Context) error {
	if err := writeFile(c, FileTSConfig); err != nil {
		return err
	}
	c.AddDependencies("typescript")
	return nil
}

type commitLint struct{}

func (commitLint) Name() string { return "commitlint" }

func (commitLint) Applies(sel tooling.Selection) bool { return sel.Has(tooling.CommitLint) }

func (commitLint) Write(_ context.Context, c *Context) error {
	if err := writeFile(c, FileCommitLint); err != nil {
		return err
	}
	c.Fragments.AddHook(HookCommitMsg, "commitlint -E HUSKY_GIT_PARAMS")
	c.AddDependencies("@commitlint/cli", "@commitlint/config-conventional", "husky")
	return nil
}

type lintFormat struct{}

func (lintFormat) Name() string { return "eslint/prettier" }

func (lintFormat) Applies(sel tooling.Selection) bool { return sel.Has(tooling.LintFormat) }

func (lintFormat) Write(_ context.Context, c *Context) error {
	for _, name := range []string{FilePrettierRC, FileESLintRC, FilePrettierIgnore} {
		if err := writeFile(c, name); err != nil {
			return err
		}
	}
	c.Fragments.AddHook(HookPreCommit, "lint-staged")
	c.Fragments.Set(manifest.KeyLintStaged, map[string][]string{
		stagedGlob: {"prettier --write", "git add"},
	})
	c.AddDependencies("eslint", "eslint-plugin-prettier", "lint-staged", "prettier")
	return nil
}

type testRunner struct{}

func (testRunner) Name() string { return "jest" }

func (testRunner) Applies(sel tooling.Selection) bool { return sel.Has(tooling.TestRunner) }

func (testRunner) Write(_ context.Context, c *Context) error {
	if err := writeFile(c, FileJestConfig); err != nil {
		return err
	}
	c.AddDependencies("jest", "ts-jest", "@types/jest")
	return nil
}

// monorepo only installs lerna; the finalizer runs lerna init after install.
type monorepo struct{}

func (monorepo) Name() string { return "lerna" }

func (monorepo) Applies(sel tooling.Selection) bool { return sel.Has(tooling.Monorepo) }

func (monorepo) Write(_ context.Context, c *Context) error {
	c.AddDependencies("lerna")
	return nil
}
