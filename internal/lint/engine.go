package lint

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mujasoft/NaturalCommitLint/internal/cache"
	"github.com/mujasoft/NaturalCommitLint/internal/config"
	"github.com/mujasoft/NaturalCommitLint/internal/gitctx"
	"github.com/mujasoft/NaturalCommitLint/internal/providers"
	"github.com/mujasoft/NaturalCommitLint/internal/redact"
)

const resultVersion = "1.0"

// maxBlankAttempts bounds the retry loop for blank model responses. The
// attempt count is carried on the Result so the presenter can report it; the
// loop never retries past this bound.
const maxBlankAttempts = 3

// Run executes one lint invocation: redact, build the prompt, make a single
// blocking completion call, extract the verdict. The provider is constructed
// from the configuration.
func Run(ctx context.Context, commit gitctx.Commit, rules string, cfg config.Config) (*Result, error) {
	completer, err := providers.New(cfg.Provider, cfg.Model)
	if err != nil {
		return nil, fmt.Errorf("creating provider: %w", err)
	}
	return RunWith(ctx, commit, rules, cfg, completer)
}

// RunWith is Run with an injected completion client.
func RunWith(ctx context.Context, commit gitctx.Commit, rules string, cfg config.Config, completer providers.Completer) (*Result, error) {
	startTime := time.Now()

	message := commit.Message
	if cfg.Privacy.RedactSecrets {
		message = redact.Secrets(message)
	}

	userPrompt := BuildUserPrompt(message, rules)

	// Cache entries are keyed over the redacted prompt, so nothing stored on
	// disk has seen an unredacted commit message.
	var store *cache.Cache
	var key string
	if cfg.Cache.Enabled {
		var err error
		store, err = cache.New(true, cfg.Cache.Dir, cfg.Cache.TTLSeconds)
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
		key = cache.BuildKey(cfg.Provider, cfg.Model, userPrompt)
		if content, ok := store.Get(key); ok {
			res := buildResult(commit, cfg, content)
			res.Cached = true
			res.Timing.TotalMs = time.Since(startTime).Milliseconds()
			return res, nil
		}
	}

	req := providers.CompletionRequest{
		SystemPrompt: SystemPrompt(),
		UserPrompt:   userPrompt,
		MaxTokens:    2048,
	}

	llmStart := time.Now()
	var resp providers.CompletionResponse
	attempts := 0
	for attempts < maxBlankAttempts {
		attempts++
		var err error
		resp, err = completer.Complete(ctx, req)
		if err != nil {
			// Fatal: no partial verdict is ever produced from a failed call.
			return nil, fmt.Errorf("completion: %w", err)
		}
		if strings.TrimSpace(resp.Content) != "" {
			break
		}
	}
	llmMs := time.Since(llmStart).Milliseconds()

	if store != nil && strings.TrimSpace(resp.Content) != "" {
		// A cache write failure does not affect the verdict.
		_ = store.Put(key, resp.Content)
	}

	res := buildResult(commit, cfg, resp.Content)
	res.Attempts = attempts
	res.Timing.LLMMs = llmMs
	res.Timing.TotalMs = time.Since(startTime).Milliseconds()
	return res, nil
}

func buildResult(commit gitctx.Commit, cfg config.Config, response string) *Result {
	return &Result{
		Tool:    "nclint",
		Version: resultVersion,
		Repo: RepoInfo{
			Root:   commit.Repo.Root,
			Head:   commit.Repo.Head,
			Branch: commit.Repo.Branch,
			Owner:  commit.Repo.Owner,
			Name:   commit.Repo.Name,
		},
		Commit:    commit.Message,
		RulesFile: cfg.RulesFile,
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		Response:  response,
		Verdict:   ExtractVerdict(response),
	}
}
