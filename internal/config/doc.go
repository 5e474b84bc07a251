// Package config manages user-level settings stored at ~/.fast-create/config.yaml:
// the package manager to drive, the log level, how hook-runner entries are
// combined, and optional version pins for installed tooling. Settings files
// are validated against an embedded JSON schema before use.
package config
