// Package cli defines the Cobra command tree for the fast-create CLI. Each
// file builds one top-level command (create, doctor, config, version).
// Commands only parse flags, wire collaborators and format output; the work
// happens in internal packages.
package cli
