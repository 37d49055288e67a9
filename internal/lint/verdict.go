package lint

import "strings"

// Sentinel tokens the model is instructed to emit. Matching is exact and
// case-sensitive; any fuzziness here would let a hedging model smuggle an
// ambiguous response past the contract.
const (
	TokenPass = "LINT_PASS"
	TokenFail = "LINT_FAIL"
)

// ExtractVerdict reduces an untrusted model response to a Verdict.
//
// The entire response is searched for each sentinel as a literal substring.
// Exactly one present yields that verdict. Both present, or neither, yields
// VerdictIndeterminate: the model violated the instruction, and that signal
// must survive rather than be coerced into a pass or fail.
func ExtractVerdict(response string) Verdict {
	hasPass := strings.Contains(response, TokenPass)
	hasFail := strings.Contains(response, TokenFail)

	switch {
	case hasPass && !hasFail:
		return VerdictPass
	case hasFail && !hasPass:
		return VerdictFail
	default:
		return VerdictIndeterminate
	}
}
