// Package redact removes secret-looking tokens from commit message text
// before it is sent to the completion backend.
//
// Detection uses regex heuristics covering common secret shapes: API keys,
// JWTs, private key headers, AWS access and secret keys, bearer tokens, and
// GitHub and Slack tokens. Redaction is on by default and disabled with
// --no-redact.
package redact
