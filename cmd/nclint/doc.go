// Nclint lints the HEAD commit message of a git repository against
// natural-language rules using a locally hosted LLM.
//
// The rules file is plain prose, not a DSL or schema. Its entire contents are
// handed to the model together with the commit message, and the model is
// instructed to conclude with exactly one of the sentinel tokens LINT_PASS or
// LINT_FAIL. The extracted verdict drives a deterministic exit code suitable
// for CI gating and git hooks.
//
// Usage:
//
//	nclint lint .                       # lint HEAD using ./rules.txt
//	nclint lint ~/src/app -f house-style.txt -m llama3
//	nclint lint . --format json --out lint.log
//	nclint models doctor                # check the backend is reachable
//
// Exit codes: 0 pass, 1 fail, 2 indeterminate verdict, 3 usage error,
// 4 runtime or backend error.
package main
