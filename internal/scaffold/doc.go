// Package scaffold holds the config writers that populate a new project: one
// writer per tooling option, run in a fixed order over a shared Context that
// accumulates dev dependencies and package.json fragments for the finalizer.
package scaffold
