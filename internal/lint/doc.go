// Package lint contains the core types and engine for LLM-based commit
// message linting.
//
// It defines the ternary Verdict and the Result aggregate, builds the prompt
// that binds the model to the sentinel-token contract, and reduces the
// untrusted free-form response back to a verdict with an exact, case-sensitive
// substring scan for LINT_PASS and LINT_FAIL.
//
// The prompt wording is part of the contract: verdict extraction is only
// reliable because the scaffolding instructs the model to emit exactly one of
// the two tokens verbatim. A response containing both tokens, or neither, is
// Indeterminate and is never coerced into a pass or a fail.
package lint
