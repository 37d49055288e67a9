package lint

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRules_ReturnsContentsVerbatim(t *testing.T) {
	t.Parallel()

	content := "1. Subject in imperative mood.\n2. Wrap the body at 72 columns.\n\n# trailing comment\n"
	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	got, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, content, got)
}

func TestLoadRules_EmptyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "rules.txt")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	got, err := LoadRules(path)
	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestLoadRules_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadRules(filepath.Join(t.TempDir(), "no-such-rules.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrRulesNotFound)
}
