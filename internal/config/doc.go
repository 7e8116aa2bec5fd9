// Package config defines the format-agnostic script model and the Loader
// interface that format-specific packages implement.
//
// A Script is an ordered list of list operations. The `engine` package only
// ever sees this model; concrete loaders for HCL and YAML live in separate
// packages.
package config
