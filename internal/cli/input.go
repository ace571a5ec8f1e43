package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HartBrook/promptpress/internal/cache"
	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
	"github.com/HartBrook/promptpress/internal/github"
)

// promptFetcher loads a prompt file from a remote repository.
type promptFetcher interface {
	FetchPrompt(ctx context.Context, ref config.PromptRef) (*github.Prompt, error)
}

// inputOptions selects where a command reads its prompt from.
type inputOptions struct {
	repo    string
	path    string
	ref     string
	offline bool
	refresh bool
}

func (o *inputOptions) addFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&o.repo, "repo", "", "Read the prompt from a GitHub repository (owner/repo or URL)")
	cmd.Flags().StringVar(&o.path, "path", "", "Prompt file path inside --repo")
	cmd.Flags().StringVar(&o.ref, "ref", "", "Branch, tag or commit for --repo (default branch if empty)")
	cmd.Flags().BoolVar(&o.offline, "offline", false, "Use the cached copy of the --repo prompt without fetching")
	cmd.Flags().BoolVar(&o.refresh, "refresh", false, "Drop the cached copy of the --repo prompt before fetching")
	cmd.MarkFlagsMutuallyExclusive("offline", "refresh")
}

// readPrompt returns the prompt text and a description of where it came
// from: --repo, a file argument, or stdin for "-" or no argument.
func (g *globalOptions) readPrompt(cmd *cobra.Command, args []string, in *inputOptions, logger *zap.Logger) (string, string, error) {
	var text, source string

	switch {
	case in.repo != "":
		ref, err := config.ParsePromptRef(in.repo, in.path, in.ref)
		if err != nil {
			return "", "", errors.Wrap(errors.ErrInvalidRepo, "invalid prompt location", "Use --repo owner/repo --path file.md", err)
		}
		content, err := g.fetchPrompt(cmd, ref, in, logger)
		if err != nil {
			return "", "", err
		}
		text, source = content, ref.String()

	case len(args) == 0 || args[0] == "-":
		source = "stdin"
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", "", errors.InputReadFailed(source, err)
		}
		text = string(data)

	default:
		source = args[0]
		data, err := os.ReadFile(source)
		if err != nil {
			return "", "", errors.InputReadFailed(source, err)
		}
		text = string(data)
	}

	if strings.TrimSpace(text) == "" {
		return "", "", errors.EmptyInput(source)
	}
	logger.Debug("read prompt", zap.String("source", source), zap.Int("bytes", len(text)))
	return text, source, nil
}

// fetchPrompt fetches ref and refreshes its cached copy. When the fetch
// fails for any reason other than auth, the cached copy is used instead,
// unless --refresh dropped it first.
func (g *globalOptions) fetchPrompt(cmd *cobra.Command, ref config.PromptRef, in *inputOptions, logger *zap.Logger) (string, error) {
	c := cache.New(config.NewPaths())

	if in.offline {
		content, meta, err := c.Read(ref)
		if err != nil {
			return "", err
		}
		logger.Debug("using cached prompt", zap.String("ref", ref.String()), zap.String("age", meta.Age()))
		return content, nil
	}

	if in.refresh {
		if err := c.Clear(ref); err != nil {
			logger.Warn("failed to clear cached prompt", zap.String("ref", ref.String()), zap.Error(err))
		}
	}

	fetcher, err := g.githubFetcher(logger)
	if err != nil {
		return "", err
	}
	logger.Debug("fetching prompt", zap.String("ref", ref.String()))
	prompt, err := fetcher.FetchPrompt(cmd.Context(), ref)
	if err != nil {
		if errors.CodeOf(err) == errors.ErrGitHubAuthFailed || !c.Exists(ref) {
			return "", err
		}
		content, meta, cacheErr := c.Read(ref)
		if cacheErr != nil {
			return "", err
		}
		logger.Warn("fetch failed, using cached prompt",
			zap.String("ref", ref.String()),
			zap.String("age", meta.Age()),
			zap.Error(err),
		)
		return content, nil
	}

	if err := c.Write(ref, prompt.Content, &cache.Metadata{SHA: prompt.SHA}); err != nil {
		logger.Warn("failed to cache prompt", zap.String("ref", ref.String()), zap.Error(err))
	}
	return prompt.Content, nil
}

func (g *globalOptions) githubFetcher(logger *zap.Logger) (promptFetcher, error) {
	if g.fetcher != nil {
		return g.fetcher, nil
	}
	client, method, err := github.NewBestClient()
	if err != nil {
		return nil, errors.GitHubAuthFailed(err)
	}
	logger.Debug("github client ready", zap.String("auth", method))
	return client, nil
}

// writeOutput writes content to path, or to the command's stdout when path
// is empty.
func writeOutput(cmd *cobra.Command, path, content string) error {
	if path == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), content)
		return err
	}
	if err := os.WriteFile(path, []byte(content+"\n"), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	printSuccess(cmd.ErrOrStderr(), "Wrote %s", path)
	return nil
}

// writeJSON writes v as indented JSON to path or stdout.
func writeJSON(cmd *cobra.Command, path string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return writeOutput(cmd, path, string(data))
}
