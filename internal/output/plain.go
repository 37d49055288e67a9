package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/mujasoft/NaturalCommitLint/internal/lint"
)

// PlainWriter renders the report without any styling. It backs the --out
// file sink, where ANSI escapes would just be noise.
type PlainWriter struct{}

func (p *PlainWriter) Write(w io.Writer, res *lint.Result) error {
	ew := &errWriter{w: w}

	head := res.Repo.Head
	if len(head) > 7 {
		head = head[:7]
	}
	ew.printf("=== nclint %s: %s @ %s ===\n", res.Verdict, repoLabel(res), head)
	ew.printf("Commit:\n%s\n\n", res.Commit)
	ew.printf("Rationale:\n%s\n\n", strings.TrimSpace(res.Response))
	ew.printf("Verdict: %s\n\n", res.Verdict)

	return ew.err
}

// errWriter wraps an io.Writer and captures the first error.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) printf(format string, args ...interface{}) {
	if ew.err != nil {
		return
	}
	_, ew.err = fmt.Fprintf(ew.w, format, args...)
}
