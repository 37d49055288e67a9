package lint

import (
	"errors"
	"fmt"
	"os"
)

// ErrRulesNotFound indicates the rules file does not exist.
var ErrRulesNotFound = errors.New("rules file not found")

// LoadRules reads a rules file and returns its contents verbatim. The text is
// opaque to nclint: no parsing, no structure. Interpretation is delegated
// entirely to the model.
func LoadRules(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("%w: %s", ErrRulesNotFound, path)
		}
		return "", fmt.Errorf("reading rules file: %w", err)
	}
	return string(data), nil
}
