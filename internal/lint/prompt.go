package lint

import "strings"

// The sentinel instruction below is part of the verdict-extraction contract,
// not presentation: ExtractVerdict only works because the model is told to
// emit exactly one of the two tokens, verbatim. Any rewording must keep an
// equivalent explicit instruction.
const systemPrompt = `You are an expert in Git commit message standards. Act as a strict, professional linter.

You will be given one commit message and a set of linting requirements written in plain language. Evaluate the commit message against the requirements and explain your reasoning in the third person. Be concise and actionable.

Your response MUST contain exactly one of the two tokens LINT_PASS or LINT_FAIL, spelled exactly as shown, in upper case. The tokens are mutually exclusive: include LINT_PASS if the commit message satisfies every requirement, include LINT_FAIL if it violates any requirement, and never include both. Never omit the token. Make it the final line of your response, in the form:

Verdict: LINT_PASS

or

Verdict: LINT_FAIL`

// SystemPrompt returns the fixed instructional scaffolding for the model.
func SystemPrompt() string {
	return systemPrompt
}

// BuildUserPrompt composes the per-invocation prompt from the literal commit
// message and the literal rules text. Construction is pure and deterministic:
// identical inputs always produce an identical prompt.
func BuildUserPrompt(commitMessage, rules string) string {
	var b strings.Builder

	b.WriteString("Lint the following commit message.\n")
	b.WriteString("\n--- BEGIN COMMIT MESSAGE ---\n")
	b.WriteString(commitMessage)
	b.WriteString("\n--- END COMMIT MESSAGE ---\n")

	if strings.TrimSpace(rules) == "" {
		b.WriteString("\nREQUIREMENTS\nNo requirements were supplied. Apply none beyond the verdict format.\n")
	} else {
		b.WriteString("\nREQUIREMENTS\n")
		b.WriteString(rules)
		if !strings.HasSuffix(rules, "\n") {
			b.WriteString("\n")
		}
	}

	b.WriteString("\nConclude with the verdict line containing exactly one of LINT_PASS or LINT_FAIL.\n")

	return b.String()
}
