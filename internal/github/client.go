package github

import (
	"context"
	"encoding/base64"
	stderrors "errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/cli/go-gh/v2/pkg/api"

	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
)

// restDoer is the part of api.RESTClient the client uses.
type restDoer interface {
	DoWithContext(ctx context.Context, method, path string, body io.Reader, response interface{}) error
}

// Client fetches prompt files from GitHub repositories.
type Client struct {
	rest restDoer
}

// NewClientWithToken creates a GitHub client with explicit token.
func NewClientWithToken(token string) (*Client, error) {
	client, err := api.NewRESTClient(api.ClientOptions{
		AuthToken: token,
	})
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// NewUnauthenticatedClient creates a GitHub client without authentication.
// It reaches public repositories only, at 60 requests an hour.
func NewUnauthenticatedClient() (*Client, error) {
	client, err := api.NewRESTClient(api.ClientOptions{})
	if err != nil {
		return nil, err
	}
	return &Client{rest: client}, nil
}

// NewBestClient resolves a token through the auth chain and falls back to
// an unauthenticated client when none is available. It reports the auth
// method in use.
func NewBestClient() (*Client, string, error) {
	if token, method, err := ResolveToken(); err == nil {
		client, err := NewClientWithToken(token)
		return client, method, err
	}
	client, err := NewUnauthenticatedClient()
	return client, "none", err
}

// fileContentsResponse represents GitHub's contents API response.
type fileContentsResponse struct {
	Type     string `json:"type"`
	Encoding string `json:"encoding"`
	Path     string `json:"path"`
	Content  string `json:"content"`
	SHA      string `json:"sha"`
}

// Prompt is a prompt file fetched from GitHub.
type Prompt struct {
	Ref     config.PromptRef
	Content string
	SHA     string
}

// FetchPrompt fetches the file ref points at.
func (c *Client) FetchPrompt(ctx context.Context, ref config.PromptRef) (*Prompt, error) {
	if ref.Owner == "" || ref.Repo == "" || ref.Path == "" {
		return nil, fmt.Errorf("owner, repo, and path are required")
	}

	endpoint := fmt.Sprintf("repos/%s/%s/contents/%s", ref.Owner, ref.Repo, escapePath(ref.Path))
	if ref.Ref != "" {
		endpoint += "?ref=" + url.QueryEscape(ref.Ref)
	}

	var response fileContentsResponse
	if err := c.rest.DoWithContext(ctx, http.MethodGet, endpoint, nil, &response); err != nil {
		return nil, classify(ref, err)
	}

	if response.Type != "" && response.Type != "file" {
		return nil, errors.GitHubFetchFailed(ref.String(), fmt.Errorf("%s is a %s, not a file", ref.Path, response.Type))
	}

	// The API wraps base64 content at 60 columns.
	content, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(response.Content, "\n", ""))
	if err != nil {
		return nil, errors.GitHubFetchFailed(ref.String(), fmt.Errorf("failed to decode content: %w", err))
	}

	return &Prompt{
		Ref:     ref,
		Content: string(content),
		SHA:     response.SHA,
	}, nil
}

// escapePath escapes each segment of a repository path.
func escapePath(path string) string {
	segments := strings.Split(path, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}

// classify maps API failures onto typed errors.
func classify(ref config.PromptRef, err error) error {
	var httpErr *api.HTTPError
	if stderrors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return errors.GitHubAuthFailed(err)
		}
	}
	return errors.GitHubFetchFailed(ref.String(), err)
}
