// Package config loads, normalizes, and validates aurgen configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads TOML files from ~/.config/aurgen/config.toml or a
// project-local aurgen.toml. The Config type centralizes every knob the CLI
// needs: transcript and output directories, helper invocation defaults, the
// generation-history ledger, and log output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths and clear validation errors.
package config
