package lint

// Verdict is the ternary outcome of linting one commit message.
type Verdict string

const (
	VerdictPass          Verdict = "pass"
	VerdictFail          Verdict = "fail"
	VerdictIndeterminate Verdict = "indeterminate"
)

// RepoInfo contains repository metadata for the linted commit.
type RepoInfo struct {
	Root   string `json:"root"`
	Head   string `json:"head"`
	Branch string `json:"branch"`
	Owner  string `json:"owner,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Timing contains performance metrics for one lint invocation.
type Timing struct {
	GitMs   int64 `json:"gitMs"`
	LLMMs   int64 `json:"llmMs"`
	TotalMs int64 `json:"totalMs"`
}

// Result is the unit handed to the presenter: one commit, one rules file,
// one model response, one verdict.
type Result struct {
	Tool      string   `json:"tool"`
	Version   string   `json:"version"`
	Repo      RepoInfo `json:"repo"`
	Commit    string   `json:"commit"`
	RulesFile string   `json:"rulesFile"`
	Provider  string   `json:"provider"`
	Model     string   `json:"model"`
	Response  string   `json:"response"`
	Verdict   Verdict  `json:"verdict"`
	// Attempts counts the completion calls made for this result. Zero means
	// the response was served from the cache and no call was made.
	Attempts int    `json:"attempts"`
	Cached   bool   `json:"cached"`
	Timing   Timing `json:"timing"`
}
