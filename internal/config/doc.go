// Package config loads, normalizes, and validates earshot configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files. The Config type centralizes every
// analysis threshold and output knob the CLI needs; the analysis engine
// itself never reads configuration and takes explicit parameters instead.
//
// Always obtain settings through this package so downstream code receives
// sanitized values and clear validation errors.
package config
