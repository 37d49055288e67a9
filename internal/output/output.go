package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mujasoft/NaturalCommitLint/internal/lint"
)

// Writer writes a lint result in a specific format.
type Writer interface {
	Write(w io.Writer, res *lint.Result) error
}

// GetWriter returns a writer for the specified format.
func GetWriter(format string) (Writer, error) {
	switch format {
	case "text":
		return &TextWriter{}, nil
	case "json":
		return &JSONWriter{}, nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}

// WriteResult renders the result to stdout in the requested format. When
// outPath is non-empty, the plain-text rendering is additionally appended to
// that file so successive runs accumulate.
func WriteResult(res *lint.Result, format, outPath string) error {
	writer, err := GetWriter(format)
	if err != nil {
		return err
	}

	if err := writer.Write(os.Stdout, res); err != nil {
		return err
	}

	if outPath != "" {
		f, err := os.OpenFile(outPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("opening output file: %w", err)
		}
		defer f.Close()
		if err := (&PlainWriter{}).Write(f, res); err != nil {
			return fmt.Errorf("writing output file: %w", err)
		}
	}

	return nil
}
