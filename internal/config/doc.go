// Package config loads, normalizes, and validates corhoh configuration data.
//
// It supplies the conventional input/output locations of the corpus build,
// expands user paths (including tilde shortcuts), reads TOML files, and honours
// environment overrides such as CORHOH_METADATA. The Config type centralizes
// every knob the CLI needs so command code never reads files or environment
// variables on its own.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
