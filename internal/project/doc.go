// Package project runs the create pipeline: guard the target directory, pick
// the tooling, run the config writers and finalize package.json.
package project
