package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes. Indeterminate gets its own non-zero code: a model that ignored
// the sentinel contract must never gate as a success.
const (
	ExitPass          = 0
	ExitFail          = 1
	ExitIndeterminate = 2
	ExitUsageError    = 3
	ExitRuntimeError  = 4
)

var rootCmd = &cobra.Command{
	Use:   "nclint",
	Short: "LLM-powered commit message linter",
	Long:  "Nclint checks the HEAD commit message of a git repository against natural-language rules using a locally hosted LLM and exits with deterministic codes for CI gating.",
}

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(versionCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitPass

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print nclint version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "nclint version %s\n", version)
	},
}
