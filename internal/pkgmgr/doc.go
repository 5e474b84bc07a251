// Package pkgmgr runs package-manager commands (npm, yarn, pnpm) for the
// create pipeline. Every command goes through an Executor, which captures the
// exit status so a failed install surfaces as a *CommandError instead of
// being ignored.
package pkgmgr
