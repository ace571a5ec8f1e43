package config

import (
	"fmt"
	"regexp"
	"strings"
)

// repoPattern matches owner/repo format.
var repoPattern = regexp.MustCompile(`^([a-zA-Z0-9_.-]+)/([a-zA-Z0-9_.-]+)$`)

// ParseRepo extracts owner and repo from various formats:
//   - "https://github.com/owner/repo"
//   - "https://github.com/owner/repo.git"
//   - "https://github.com/owner/repo/blob/main/prompts/review.md"
//   - "github.com/owner/repo"
//   - "owner/repo"
func ParseRepo(repoStr string) (owner, repo string, err error) {
	if repoStr == "" {
		return "", "", fmt.Errorf("repository string is empty")
	}

	repoStr = strings.TrimPrefix(repoStr, "https://")
	repoStr = strings.TrimPrefix(repoStr, "http://")
	repoStr = strings.TrimPrefix(repoStr, "github.com/")
	repoStr = strings.TrimSuffix(repoStr, "/")
	repoStr = strings.TrimSuffix(repoStr, ".git")

	// Only owner/repo matters; tree/blob suffixes are dropped.
	parts := strings.Split(repoStr, "/")
	if len(parts) >= 2 {
		repoStr = parts[0] + "/" + parts[1]
	}

	matches := repoPattern.FindStringSubmatch(repoStr)
	if matches == nil {
		return "", "", fmt.Errorf("invalid repository format: %s (expected owner/repo)", repoStr)
	}

	return matches[1], matches[2], nil
}

// PromptRef locates a prompt file in a GitHub repository.
type PromptRef struct {
	Owner string
	Repo  string
	Path  string
	Ref   string // branch, tag or commit; empty means the default branch
}

// ParsePromptRef builds a PromptRef from --repo, --path and --ref values.
// A blob URL in repo supplies path and ref when they are not given.
func ParsePromptRef(repoStr, path, ref string) (PromptRef, error) {
	owner, repo, err := ParseRepo(repoStr)
	if err != nil {
		return PromptRef{}, err
	}

	if path == "" {
		if blobRef, blobPath, ok := blobLocation(repoStr); ok {
			path = blobPath
			if ref == "" {
				ref = blobRef
			}
		}
	}

	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return PromptRef{}, fmt.Errorf("no prompt path given for %s/%s", owner, repo)
	}

	return PromptRef{Owner: owner, Repo: repo, Path: path, Ref: ref}, nil
}

// String returns owner/repo/path[@ref].
func (r PromptRef) String() string {
	s := r.Owner + "/" + r.Repo + "/" + r.Path
	if r.Ref != "" {
		s += "@" + r.Ref
	}
	return s
}

// blobLocation extracts ref and path from ".../owner/repo/blob/<ref>/<path>".
func blobLocation(repoStr string) (ref, path string, ok bool) {
	_, rest, found := strings.Cut(repoStr, "/blob/")
	if !found {
		return "", "", false
	}
	ref, path, found = strings.Cut(rest, "/")
	if !found || ref == "" || path == "" {
		return "", "", false
	}
	return ref, path, true
}
