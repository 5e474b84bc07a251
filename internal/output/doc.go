// Package output provides terminal styling and exit-code carrying errors for
// the fast-create CLI.
package output
