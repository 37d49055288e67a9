// Package gitctx reads the HEAD commit and repository metadata from a local
// git working copy.
//
// It uses go-git rather than shelling out, so tests can build throwaway
// repositories without a git binary on the path. The repository is opened
// read-only; nclint never modifies history.
package gitctx
