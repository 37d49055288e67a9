package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mujasoft/NaturalCommitLint/internal/lint"
)

// JSONWriter outputs the full result as JSON.
type JSONWriter struct{}

func (j *JSONWriter) Write(w io.Writer, res *lint.Result) error {
	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing JSON: %w", err)
	}
	_, err = fmt.Fprintln(w)
	return err
}
