// Package config provides configuration structures and utilities for
// datascan. It defines the scan options built from CLI flags and the
// optional YAML rule file controlling ingestion behavior.
package config
