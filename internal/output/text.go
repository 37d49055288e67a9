package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mujasoft/NaturalCommitLint/internal/lint"
	"github.com/mujasoft/NaturalCommitLint/internal/ui"
)

// TextWriter renders a styled, human-readable report: the commit under
// review, the model's full rationale, and the verdict.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, res *lint.Result) error {
	label := repoLabel(res)

	var b strings.Builder

	b.WriteString(ui.Panel(res.Commit, fmt.Sprintf("Head Commit for %q", label), ui.ColorCyan))
	b.WriteString("\n\n")

	rationale := strings.TrimSpace(res.Response)
	if rationale == "" {
		rationale = "(the model returned an empty response)"
	}
	b.WriteString(ui.Panel(rationale, fmt.Sprintf("Lint Output for %q", label), ui.ColorGreen))
	b.WriteString("\n\n")

	text, color := verdictDisplay(res.Verdict)
	b.WriteString(ui.Panel(text, "Verdict", color))
	b.WriteString("\n")

	// Indeterminate is a distinct outcome and is never folded into a pass.
	if res.Verdict == lint.VerdictIndeterminate {
		b.WriteString(ui.Warning("WARNING: the model did not honor the verdict token contract; treat this run as inconclusive."))
		b.WriteString("\n")
	}
	if res.Attempts > 1 {
		b.WriteString(fmt.Sprintf("(model returned a blank response; took %d attempts)\n", res.Attempts))
	}
	if res.Cached {
		b.WriteString("(served from cache)\n")
	}

	b.WriteString(ui.Warning("WARNING: Please double-check since LLMs can still make mistakes."))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func verdictDisplay(v lint.Verdict) (string, lipgloss.Color) {
	switch v {
	case lint.VerdictPass:
		return "✓ Commit message passed all lint checks.", ui.ColorGreen
	case lint.VerdictFail:
		return "✗ Commit message needs revision.", ui.ColorRed
	default:
		return "? No reliable verdict could be extracted.", ui.ColorYellow
	}
}

func repoLabel(res *lint.Result) string {
	if res.Repo.Name != "" {
		return res.Repo.Name
	}
	return res.Repo.Root
}
