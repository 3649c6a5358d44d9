// Package processor runs the settlement file pipeline: list every key once,
// filter keys through the structural rules, derive a settlement file for
// each eligible key and copy it under its backup key.
//
// Objects are processed strictly one after another in listing order. Only a
// listing failure fails the run; every per-object failure is logged, counted
// in the [Summary] and skipped.
package processor
