// Package tooling defines the closed set of optional integrations the create
// command can configure (lint/format, test runner, commit lint, monorepo) and
// the Selection chosen for a single run.
package tooling
