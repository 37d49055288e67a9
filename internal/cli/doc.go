// Package cli wires together the Cobra command tree for the nclint binary.
//
// It defines the root command and all subcommands (lint, config, models,
// cache, version), binds flags, reads configuration, invokes the lint
// engine, and returns deterministic exit codes for CI gating.
package cli
