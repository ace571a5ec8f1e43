// Package github fetches prompts from GitHub repositories.
package github

import (
	"os"
	"os/exec"
	"strings"

	"github.com/HartBrook/promptpress/internal/errors"
)

// EnvGitHubToken holds a token used when the gh CLI is not logged in.
const EnvGitHubToken = "PROMPTPRESS_GITHUB_TOKEN"

type tokenSource struct {
	method string
	token  func() (string, error)
}

// tokenSources are tried in order.
var tokenSources = []tokenSource{
	{method: "gh CLI", token: GetTokenFromGHCLI},
	{method: EnvGitHubToken, token: func() (string, error) { return GetTokenFromEnv(), nil }},
}

// ResolveToken returns the first available token and the method that
// supplied it.
func ResolveToken() (token, method string, err error) {
	var lastErr error
	for _, src := range tokenSources {
		t, err := src.token()
		if err != nil {
			lastErr = err
			continue
		}
		if t != "" {
			return t, src.method, nil
		}
	}
	return "", "none", errors.GitHubAuthFailed(lastErr)
}

// GetTokenFromGHCLI runs `gh auth token`.
func GetTokenFromGHCLI() (string, error) {
	out, err := exec.Command("gh", "auth", "token").Output()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// GetTokenFromEnv reads PROMPTPRESS_GITHUB_TOKEN.
func GetTokenFromEnv() string {
	return strings.TrimSpace(os.Getenv(EnvGitHubToken))
}
