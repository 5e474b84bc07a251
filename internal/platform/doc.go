// Package platform provides the filesystem primitives the create pipeline
// relies on: existence and emptiness checks, directory creation, and wiping a
// directory's contents while keeping the directory itself.
package platform
