// Package config defines the run configuration consumed by the settlement
// file processor.
//
// [Run] carries the values surfaced by the command line for a single run
// (bucket, prefix, endpoint, suffix, ad-hoc regex, KMS key, pretend mode)
// together with store connection settings. [Patterns] holds the structural
// key rules; it is built once at startup, optionally overridden from a YAML
// file, and passed explicitly to the classifier.
package config
