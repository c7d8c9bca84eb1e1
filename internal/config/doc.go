// Package config loads and merges tadabbur configuration from environment
// variables, command-line flags, and an optional JSON file.
//
// Sources are merged with mergo in priority order: a value set by an
// earlier source is never overwritten by a later one. The same
// StructuredConfig type backs both binaries; GetClientConfig derives the
// narrower client view.
package config
