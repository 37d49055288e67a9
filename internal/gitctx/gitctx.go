package gitctx

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrRepositoryNotFound indicates the path is not inside a git repository.
var ErrRepositoryNotFound = errors.New("repository not found")

// ErrNoCommits indicates the repository has no commit history.
var ErrNoCommits = errors.New("no commits found")

// RepoMeta contains git repository metadata.
type RepoMeta struct {
	Root   string
	Head   string
	Branch string
	Owner  string
	Name   string
}

// Commit holds the HEAD commit message and its repository context.
type Commit struct {
	Message string
	SHA     string
	Repo    RepoMeta
}

// githubRemoteRe matches both HTTPS and SSH GitHub remote URLs. The name
// match is lazy so a trailing .git is stripped while dots inside the
// repository name survive.
var githubRemoteRe = regexp.MustCompile(`(?:https://github\.com/|git@github\.com:)([^/]+)/(.+?)(?:\.git)?$`)

// HeadCommit opens the repository at path and returns the full text of the
// HEAD commit message (subject, body, and trailing metadata lines) together
// with repository metadata. No history is modified.
func HeadCommit(path string) (Commit, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Commit{}, fmt.Errorf("%w: %s", ErrRepositoryNotFound, path)
		}
		return Commit{}, fmt.Errorf("opening repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		if errors.Is(err, plumbing.ErrReferenceNotFound) {
			return Commit{}, fmt.Errorf("%w: %s", ErrNoCommits, path)
		}
		return Commit{}, fmt.Errorf("resolving HEAD: %w", err)
	}

	obj, err := repo.CommitObject(head.Hash())
	if err != nil {
		return Commit{}, fmt.Errorf("reading HEAD commit: %w", err)
	}

	meta := RepoMeta{
		Root: rootOf(repo, path),
		Head: head.Hash().String(),
	}
	if head.Name().IsBranch() {
		meta.Branch = head.Name().Short()
	}
	meta.Owner, meta.Name = originOwnerRepo(repo)

	return Commit{
		Message: strings.TrimRight(obj.Message, "\n"),
		SHA:     head.Hash().String(),
		Repo:    meta,
	}, nil
}

func rootOf(repo *git.Repository, fallback string) string {
	wt, err := repo.Worktree()
	if err != nil {
		return fallback
	}
	return wt.Filesystem.Root()
}

// originOwnerRepo parses the owner and repository name from the origin remote
// URL. Both values are empty when there is no origin or the URL is not a
// recognized GitHub form.
func originOwnerRepo(repo *git.Repository) (string, string) {
	remote, err := repo.Remote("origin")
	if err != nil {
		return "", ""
	}
	urls := remote.Config().URLs
	if len(urls) == 0 {
		return "", ""
	}
	m := githubRemoteRe.FindStringSubmatch(strings.TrimSuffix(urls[0], "/"))
	if m == nil {
		return "", ""
	}
	return m[1], m[2]
}
