// Package config defines the format-agnostic plan model for the
// application, along with the Loader interface for reading plans from
// various sources.
//
// The `config.Plan` is the single source of truth for the `dag` and
// `executor` packages. Concrete implementations of the Loader interface,
// such as for HCL plan files or PRP markdown front-matter, are provided
// in separate packages.
package config
