package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mujasoft/NaturalCommitLint/internal/config"
	"github.com/mujasoft/NaturalCommitLint/internal/providers"
	"github.com/mujasoft/NaturalCommitLint/internal/ui"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "Backend and model management",
}

type modelInfo struct {
	Provider string
	Models   []string
}

var knownModels = []modelInfo{
	{
		Provider: "ollama",
		Models: []string{
			"llama3.3",
			"llama3.2",
			"llama3.1",
			"llama3",
			"mistral",
			"qwen2.5",
			"gemma2",
		},
	},
	{
		Provider: "lmstudio",
		Models: []string{
			"(any model loaded in LM Studio; pass its identifier with --model)",
		},
	},
}

var modelsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List known backends and models",
	Run: func(cmd *cobra.Command, args []string) {
		for _, info := range knownModels {
			fmt.Fprintln(os.Stdout, ui.SectionHeader(info.Provider, ui.ColorCyan))
			for _, m := range info.Models {
				fmt.Fprintf(os.Stdout, "  - %s\n", m)
			}
			fmt.Fprintln(os.Stdout)
		}
	},
}

var modelsDoctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that the configured backend is reachable",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(buildOverrides())
		if err != nil {
			return err
		}

		providerName := cfg.Provider
		if flagProvider != "" {
			providerName = flagProvider
		}

		fmt.Fprintf(os.Stdout, "Checking %s...\n", providerName)

		p, err := providers.New(providerName, cfg.Model)
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitUsageError
			return nil
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		_, err = p.Complete(ctx, providers.CompletionRequest{
			SystemPrompt: "Respond with exactly: ok",
			UserPrompt:   "ping",
			MaxTokens:    10,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "FAIL: %v\n", err)
			exitCode = ExitRuntimeError
			return nil
		}

		fmt.Fprintf(os.Stdout, "OK: %s is reachable and responding\n", providerName)
		return nil
	},
}

func init() {
	modelsCmd.AddCommand(modelsListCmd)
	modelsCmd.AddCommand(modelsDoctorCmd)
	modelsDoctorCmd.Flags().StringVar(&flagProvider, "provider", "", "Backend to check")
}
