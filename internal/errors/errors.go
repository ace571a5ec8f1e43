// Package errors provides typed errors for promptpress.
package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// ErrorCode identifies the type of error.
type ErrorCode string

const (
	ErrConfigNotFound    ErrorCode = "CONFIG_NOT_FOUND"
	ErrConfigInvalid     ErrorCode = "CONFIG_INVALID"
	ErrInputReadFailed   ErrorCode = "INPUT_READ_FAILED"
	ErrEmptyInput        ErrorCode = "EMPTY_INPUT"
	ErrInvalidSizeClass  ErrorCode = "INVALID_SIZE_CLASS"
	ErrInvalidLanguage   ErrorCode = "INVALID_LANGUAGE"
	ErrInvalidRepo       ErrorCode = "INVALID_REPO"
	ErrGitHubAuthFailed  ErrorCode = "GITHUB_AUTH_FAILED"
	ErrGitHubFetchFailed ErrorCode = "GITHUB_FETCH_FAILED"
	ErrValidationFailed  ErrorCode = "VALIDATION_FAILED"
	ErrCacheNotFound     ErrorCode = "CACHE_NOT_FOUND"
)

// PressError represents a typed error with a user-facing hint.
type PressError struct {
	Code    ErrorCode
	Message string
	Hint    string
	Cause   error
}

func (e *PressError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *PressError) Unwrap() error {
	return e.Cause
}

// New creates a new PressError.
func New(code ErrorCode, message, hint string) *PressError {
	return &PressError{
		Code:    code,
		Message: message,
		Hint:    hint,
	}
}

// Wrap creates a new PressError wrapping an existing error.
func Wrap(code ErrorCode, message, hint string, cause error) *PressError {
	return &PressError{
		Code:    code,
		Message: message,
		Hint:    hint,
		Cause:   cause,
	}
}

// HintOf returns the hint of the first PressError in err's chain.
func HintOf(err error) string {
	var pe *PressError
	if stderrors.As(err, &pe) {
		return pe.Hint
	}
	return ""
}

// CodeOf returns the code of the first PressError in err's chain.
func CodeOf(err error) ErrorCode {
	var pe *PressError
	if stderrors.As(err, &pe) {
		return pe.Code
	}
	return ""
}

// ConfigNotFound returns an error for a missing config file.
func ConfigNotFound(path string) *PressError {
	return &PressError{
		Code:    ErrConfigNotFound,
		Message: fmt.Sprintf("config file not found: %s", path),
		Hint:    "Run `promptpress init` to create a configuration",
	}
}

// ConfigInvalid returns an error for an invalid config.
func ConfigInvalid(reason string) *PressError {
	return &PressError{
		Code:    ErrConfigInvalid,
		Message: fmt.Sprintf("invalid config: %s", reason),
		Hint:    "Check your config file at ~/.config/promptpress/config.yaml",
	}
}

// InputReadFailed returns an error when the prompt cannot be read.
func InputReadFailed(source string, cause error) *PressError {
	return &PressError{
		Code:    ErrInputReadFailed,
		Message: fmt.Sprintf("failed to read prompt from %s", source),
		Hint:    "Pass a readable file, `-` for stdin, or --repo with --path",
		Cause:   cause,
	}
}

// EmptyInput returns an error for a prompt with no content.
func EmptyInput(source string) *PressError {
	return &PressError{
		Code:    ErrEmptyInput,
		Message: fmt.Sprintf("prompt from %s is empty", source),
		Hint:    "Provide a prompt with at least one word",
	}
}

// InvalidSizeClass returns an error for an unknown size class.
func InvalidSizeClass(cause error) *PressError {
	return &PressError{
		Code:    ErrInvalidSizeClass,
		Message: "invalid size class",
		Hint:    "Use --size short, medium, long or very_long",
		Cause:   cause,
	}
}

// InvalidLanguage returns an error for an unsupported language.
func InvalidLanguage(cause error) *PressError {
	return &PressError{
		Code:    ErrInvalidLanguage,
		Message: "invalid language",
		Hint:    "Use --lang fr, en or ar, or omit it to detect the language",
		Cause:   cause,
	}
}

// InvalidRepo returns an error for malformed repo strings.
func InvalidRepo(repo string) *PressError {
	return &PressError{
		Code:    ErrInvalidRepo,
		Message: fmt.Sprintf("invalid repository format: %s", repo),
		Hint:    "Use format: github.com/owner/repo or owner/repo",
	}
}

// GitHubAuthFailed returns an error for authentication failures.
func GitHubAuthFailed(cause error) *PressError {
	return &PressError{
		Code:    ErrGitHubAuthFailed,
		Message: "GitHub authentication failed",
		Hint:    "Run `gh auth login` or set PROMPTPRESS_GITHUB_TOKEN environment variable",
		Cause:   cause,
	}
}

// GitHubFetchFailed returns an error for fetch failures.
func GitHubFetchFailed(repo string, cause error) *PressError {
	return &PressError{
		Code:    ErrGitHubFetchFailed,
		Message: fmt.Sprintf("failed to fetch from %s", repo),
		Hint:    "Check that the repository and path exist and you have access",
		Cause:   cause,
	}
}

// ValidationFailed returns an error listing the issues found in a
// compression result.
func ValidationFailed(issues []string) *PressError {
	msg := "compression failed validation"
	if len(issues) > 0 {
		msg += ": " + strings.Join(issues, "; ")
	}
	return &PressError{
		Code:    ErrValidationFailed,
		Message: msg,
		Hint:    "Drop --strict to report issues without failing",
	}
}

// CacheNotFound returns an error when no cached copy of a prompt exists.
func CacheNotFound(ref string) *PressError {
	return &PressError{
		Code:    ErrCacheNotFound,
		Message: fmt.Sprintf("no cached copy of %s", ref),
		Hint:    "Run once without --offline to fetch the prompt",
	}
}
