// Package config loads and merges nclint configuration from multiple sources.
//
// Precedence (highest to lowest):
//  1. CLI flags
//  2. Environment variables (NCLINT_PROVIDER, NCLINT_MODEL, NCLINT_RULES_FILE, etc.)
//  3. Config file ($XDG_CONFIG_HOME/nclint/config.json)
//  4. Built-in defaults
//
// Use [Load] to obtain the merged [Config] for an invocation. Defaults are
// explicit named fields, resolved once and passed down; there is no ambient
// mutable state.
package config
