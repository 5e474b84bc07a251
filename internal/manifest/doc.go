// Package manifest reads, edits and writes a project's package.json while
// preserving key order, and collects the fragments that tooling writers
// contribute to it before the final merge.
package manifest
