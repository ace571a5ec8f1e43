package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigErrors(t *testing.T) {
	err := ConfigNotFound("/tmp/config.yaml")
	assert.Equal(t, ErrConfigNotFound, err.Code)
	assert.Contains(t, err.Error(), "/tmp/config.yaml")
	assert.Contains(t, err.Hint, "promptpress init")

	err = ConfigInvalid("size_class must be one of short, medium, long, very_long")
	assert.Equal(t, ErrConfigInvalid, err.Code)
	assert.Contains(t, err.Error(), "invalid config: size_class")
}

func TestInputReadFailed(t *testing.T) {
	cause := errors.New("permission denied")
	err := InputReadFailed("prompt.md", cause)

	assert.Equal(t, ErrInputReadFailed, err.Code)
	assert.Equal(t, "failed to read prompt from prompt.md: permission denied", err.Error())

	unwrapped := err.Unwrap()
	require.NotNil(t, unwrapped)
	assert.Equal(t, cause, unwrapped)
}

func TestEmptyInput(t *testing.T) {
	err := EmptyInput("stdin")

	assert.Equal(t, ErrEmptyInput, err.Code)
	assert.Equal(t, "prompt from stdin is empty", err.Error())
	assert.Nil(t, err.Unwrap())
}

func TestValidationFailed(t *testing.T) {
	err := ValidationFailed([]string{"insufficient reduction: 20% (minimum 30%)", "too short: 5 tokens (minimum 10)"})

	assert.Equal(t, ErrValidationFailed, err.Code)
	assert.Contains(t, err.Error(), "compression failed validation")
	assert.Contains(t, err.Error(), "insufficient reduction")
	assert.Contains(t, err.Error(), "; too short")
	assert.Contains(t, err.Hint, "--strict")
}

func TestValidationFailed_EmptyIssues(t *testing.T) {
	err := ValidationFailed([]string{})

	assert.Equal(t, "compression failed validation", err.Error())
}

func TestFlagErrors(t *testing.T) {
	size := InvalidSizeClass(errors.New(`unknown size class "huge"`))
	assert.Equal(t, ErrInvalidSizeClass, size.Code)
	assert.Contains(t, size.Error(), "huge")
	assert.Contains(t, size.Hint, "very_long")

	lang := InvalidLanguage(errors.New("unsupported language: de"))
	assert.Equal(t, ErrInvalidLanguage, lang.Code)
	assert.Contains(t, lang.Hint, "--lang")
}

func TestGitHubErrors(t *testing.T) {
	auth := GitHubAuthFailed(errors.New("bad credentials"))
	assert.Equal(t, ErrGitHubAuthFailed, auth.Code)
	assert.Contains(t, auth.Hint, "PROMPTPRESS_GITHUB_TOKEN")

	fetch := GitHubFetchFailed("acme/prompts", errors.New("404"))
	assert.Equal(t, ErrGitHubFetchFailed, fetch.Code)
	assert.Equal(t, "failed to fetch from acme/prompts: 404", fetch.Error())

	repo := InvalidRepo("not a repo")
	assert.Equal(t, ErrInvalidRepo, repo.Code)
	assert.Contains(t, repo.Hint, "owner/repo")
}

func TestCacheNotFound(t *testing.T) {
	err := CacheNotFound("acme/prompts/review.md")

	assert.Equal(t, ErrCacheNotFound, err.Code)
	assert.Contains(t, err.Error(), "acme/prompts/review.md")
	assert.Contains(t, err.Hint, "--offline")
}

func TestPressError_Error(t *testing.T) {
	t.Run("without cause", func(t *testing.T) {
		err := &PressError{
			Code:    ErrEmptyInput,
			Message: "test message",
		}
		assert.Equal(t, "test message", err.Error())
	})

	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := &PressError{
			Code:    ErrEmptyInput,
			Message: "test message",
			Cause:   cause,
		}
		assert.Equal(t, "test message: root cause", err.Error())
	})
}

func TestNew(t *testing.T) {
	err := New(ErrInvalidRepo, "test message", "test hint")

	assert.Equal(t, ErrInvalidRepo, err.Code)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test hint", err.Hint)
	assert.Nil(t, err.Cause)
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrInputReadFailed, "wrapper message", "wrapper hint", cause)

	assert.Equal(t, ErrInputReadFailed, err.Code)
	assert.Equal(t, "wrapper message", err.Message)
	assert.Equal(t, "wrapper hint", err.Hint)
	assert.Equal(t, cause, err.Cause)
}

func TestHintAndCodeOf(t *testing.T) {
	wrapped := fmt.Errorf("compress: %w", EmptyInput("stdin"))

	assert.Equal(t, "Provide a prompt with at least one word", HintOf(wrapped))
	assert.Equal(t, ErrEmptyInput, CodeOf(wrapped))

	plain := errors.New("plain")
	assert.Empty(t, HintOf(plain))
	assert.Empty(t, CodeOf(plain))
	assert.Empty(t, HintOf(nil))
}
