package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVerdict_ClassifiesResponses(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		response string
		want     Verdict
	}{
		{
			name:     "pass token alone",
			response: "LINT_PASS",
			want:     VerdictPass,
		},
		{
			name:     "fail token alone",
			response: "LINT_FAIL",
			want:     VerdictFail,
		},
		{
			name:     "pass token embedded in prose",
			response: "The commit message meets every requirement.\n\nVerdict: LINT_PASS",
			want:     VerdictPass,
		},
		{
			name:     "fail token embedded in prose",
			response: "The subject line exceeds the length limit.\n\nVerdict: LINT_FAIL",
			want:     VerdictFail,
		},
		{
			name:     "token position does not matter",
			response: "LINT_FAIL because the body is missing a rationale.",
			want:     VerdictFail,
		},
		{
			name:     "both tokens present",
			response: "It could be LINT_PASS or LINT_FAIL depending on interpretation.",
			want:     VerdictIndeterminate,
		},
		{
			name:     "neither token present",
			response: "The commit message looks fine to me.",
			want:     VerdictIndeterminate,
		},
		{
			name:     "empty response",
			response: "",
			want:     VerdictIndeterminate,
		},
		{
			name:     "whitespace only",
			response: "  \n\t ",
			want:     VerdictIndeterminate,
		},
		{
			name:     "lowercase token is not a match",
			response: "verdict: lint_pass",
			want:     VerdictIndeterminate,
		},
		{
			name:     "mixed case token is not a match",
			response: "Lint_Pass",
			want:     VerdictIndeterminate,
		},
		{
			name:     "token split by whitespace is not a match",
			response: "LINT_ PASS",
			want:     VerdictIndeterminate,
		},
		{
			name:     "token at the very start of a long response",
			response: "LINT_PASS\n" + strings.Repeat("Additional commentary. ", 200),
			want:     VerdictPass,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, ExtractVerdict(tc.response))
		})
	}
}

func TestExtractVerdict_NeverCollapsesIndeterminate(t *testing.T) {
	t.Parallel()

	// A response containing both tokens must not be reported as either
	// outcome, no matter how many times each token appears.
	response := "LINT_FAIL LINT_PASS LINT_FAIL LINT_PASS"
	got := ExtractVerdict(response)
	assert.NotEqual(t, VerdictPass, got)
	assert.NotEqual(t, VerdictFail, got)
	assert.Equal(t, VerdictIndeterminate, got)
}
