// Package cache provides a file-based cache for completion responses.
//
// Entries are keyed by a SHA-256 hash of the provider name, model, and the
// redacted prompt, and store the raw response string with a creation
// timestamp and TTL. Expired entries are skipped on read.
//
// Caching is disabled by default so a plain lint invocation leaves no state
// behind; the default directory when enabled is $XDG_CACHE_HOME/nclint (or
// the OS-appropriate equivalent).
package cache
