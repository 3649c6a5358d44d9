// Package output persists named artifacts of a run, such as the run summary
// and its metrics, to a filesystem selected at startup.
package output
