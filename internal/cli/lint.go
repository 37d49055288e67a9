package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mujasoft/NaturalCommitLint/internal/config"
	"github.com/mujasoft/NaturalCommitLint/internal/gitctx"
	"github.com/mujasoft/NaturalCommitLint/internal/lint"
	"github.com/mujasoft/NaturalCommitLint/internal/output"
)

var (
	flagRulesFile string
	flagProvider  string
	flagModel     string
	flagFormat    string
	flagOut       string
	flagTimeout   int
	flagNoRedact  bool
	flagNoCache   bool
)

var lintCmd = &cobra.Command{
	Use:   "lint <repo-dir>",
	Short: "Lint the HEAD commit message of a repository",
	Long: `Lint reads the HEAD commit message from the repository at <repo-dir>,
sends it with the rules file to the configured model, and reports the
extracted verdict. The rules file is plain natural-language text; its entire
contents are passed to the model verbatim.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}
		if flagNoRedact {
			cfg.Privacy.RedactSecrets = false
			fmt.Fprintln(os.Stderr, "WARNING: secret redaction is disabled")
		}
		if flagNoCache {
			cfg.Cache.Enabled = false
		}

		// Both pre-flight reads must succeed before any backend call is made.
		gitStart := time.Now()
		commit, err := gitctx.HeadCommit(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		gitMs := time.Since(gitStart).Milliseconds()

		rules, err := lint.LoadRules(cfg.RulesFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		ctx := context.Background()
		if cfg.TimeoutSeconds > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, time.Duration(cfg.TimeoutSeconds)*time.Second)
			defer cancel()
		}

		res, err := lint.Run(ctx, commit, rules, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}
		res.Timing.GitMs = gitMs

		if err := output.WriteResult(res, cfg.Format, flagOut); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		exitCode = exitCodeFor(res.Verdict)
		return nil
	},
}

func exitCodeFor(v lint.Verdict) int {
	switch v {
	case lint.VerdictPass:
		return ExitPass
	case lint.VerdictFail:
		return ExitFail
	default:
		return ExitIndeterminate
	}
}

func buildOverrides() map[string]string {
	m := make(map[string]string)
	if flagRulesFile != "" {
		m["rulesFile"] = flagRulesFile
	}
	if flagProvider != "" {
		m["provider"] = flagProvider
	}
	if flagModel != "" {
		m["model"] = flagModel
	}
	if flagFormat != "" {
		m["format"] = flagFormat
	}
	if flagTimeout > 0 {
		m["timeoutSeconds"] = fmt.Sprintf("%d", flagTimeout)
	}
	return m
}

func init() {
	lintCmd.Flags().StringVarP(&flagRulesFile, "rules-file", "f", "", "Rules file path (default: rules.txt)")
	lintCmd.Flags().StringVar(&flagProvider, "provider", "", "Completion backend (ollama, lmstudio)")
	lintCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Model name")
	lintCmd.Flags().StringVar(&flagFormat, "format", "", "Output format (text, json)")
	lintCmd.Flags().StringVarP(&flagOut, "out", "o", "", "Append plain-text output to this file")
	lintCmd.Flags().IntVar(&flagTimeout, "timeout", 0, "Backend call timeout in seconds (0 = none)")
	lintCmd.Flags().BoolVar(&flagNoRedact, "no-redact", false, "Disable secret redaction (use with caution)")
	lintCmd.Flags().BoolVar(&flagNoCache, "no-cache", false, "Bypass the response cache")
}
