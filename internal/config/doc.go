// Package config loads, normalizes, and validates Kambel configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours KAMBEL_* environment overrides for
// bind addresses and the upstream authority URL. The Config type centralizes
// every knob the authority and proxy processes need.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
