package lint

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildUserPrompt_IsDeterministic(t *testing.T) {
	t.Parallel()

	commit := "feat: add retry budget to the fetcher\n\nBounded retries avoid thundering herds."
	rules := "1. Use conventional commit prefixes.\n2. Keep the subject under 72 characters.\n"

	first := BuildUserPrompt(commit, rules)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, BuildUserPrompt(commit, rules))
	}
}

func TestBuildUserPrompt_CarriesInputsVerbatim(t *testing.T) {
	t.Parallel()

	commit := "fix: handle   odd\tspacing & symbols <>&\"' exactly"
	rules := "- No trailing whitespace.\n- Reference a ticket like PROJ-123."

	prompt := BuildUserPrompt(commit, rules)

	assert.Contains(t, prompt, commit)
	assert.Contains(t, prompt, rules)

	// The commit message is fenced so the model can tell payload from
	// instructions.
	begin := strings.Index(prompt, "--- BEGIN COMMIT MESSAGE ---")
	end := strings.Index(prompt, "--- END COMMIT MESSAGE ---")
	require.GreaterOrEqual(t, begin, 0)
	require.Greater(t, end, begin)
	assert.Contains(t, prompt[begin:end], commit)
}

func TestBuildUserPrompt_EmptyRules(t *testing.T) {
	t.Parallel()

	prompt := BuildUserPrompt("chore: bump deps", "")
	assert.Contains(t, prompt, "No requirements were supplied")

	// Whitespace-only rules are treated the same as absent rules.
	assert.Equal(t, prompt, BuildUserPrompt("chore: bump deps", "  \n\t"))
}

func TestBuildUserPrompt_MentionsBothTokens(t *testing.T) {
	t.Parallel()

	prompt := BuildUserPrompt("docs: fix typo", "anything")
	assert.Contains(t, prompt, TokenPass)
	assert.Contains(t, prompt, TokenFail)
}

func TestSystemPrompt_StatesTokenContract(t *testing.T) {
	t.Parallel()

	sys := SystemPrompt()
	assert.Contains(t, sys, TokenPass)
	assert.Contains(t, sys, TokenFail)
	assert.Contains(t, sys, "exactly one")
}
