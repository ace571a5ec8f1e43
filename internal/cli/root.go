// Package cli implements the promptpress command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
	"github.com/HartBrook/promptpress/internal/logging"
)

var (
	// Version is set at build time.
	Version = "dev"

	// Output helpers.
	successIcon = color.New(color.FgGreen).Sprint("✓")
	warningIcon = color.New(color.FgYellow).Sprint("⚠")
	errorIcon   = color.New(color.FgRed).Sprint("✗")

	success = color.New(color.FgGreen).SprintFunc()
	warning = color.New(color.FgYellow).SprintFunc()
	info    = color.New(color.FgCyan).SprintFunc()
	dim     = color.New(color.Faint).SprintFunc()
)

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	configPath string
	verbose    bool

	// fetcher overrides the GitHub client, for tests.
	fetcher promptFetcher
}

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	return newRootCmd(&globalOptions{})
}

func newRootCmd(g *globalOptions) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "promptpress",
		Short: "Compress and complete LLM prompts",
		Long: `Promptpress rewrites LLM prompts with deterministic pattern passes.

compress shrinks a verbose prompt into a dense tagged instruction,
validate checks a compression against quality thresholds, and optimize
completes truncated prompts and adds the sections a target length needs.
French, English and Arabic prompts are supported.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&g.configPath, "config", "", "Config file (default ~/.config/promptpress/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&g.verbose, "verbose", "v", false, "Log each pipeline stage")

	rootCmd.AddCommand(NewCompressCmd(g))
	rootCmd.AddCommand(NewValidateCmd(g))
	rootCmd.AddCommand(NewOptimizeCmd(g))
	rootCmd.AddCommand(NewInitCmd(g))
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "promptpress %s\n", Version)
		},
	}
}

// Execute runs the CLI.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %s\n", errorIcon, err.Error())
		if hint := errors.HintOf(err); hint != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", dim(hint))
		}
		return err
	}
	return nil
}

// path returns the config file the command should read.
func (g *globalOptions) path() string {
	if g.configPath != "" {
		return g.configPath
	}
	return config.NewPaths().ConfigFile
}

// setup loads config and builds the logger for a command run.
func (g *globalOptions) setup(cmd *cobra.Command) (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadOrDefault(g.path())
	if err != nil {
		return nil, nil, err
	}
	logger, err := logging.New(logging.Options{
		Level:   cfg.Logging.Level,
		Verbose: g.verbose,
		Output:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, nil, errors.ConfigInvalid(err.Error())
	}
	return cfg, logger, nil
}

// printSuccess prints a success message.
func printSuccess(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", successIcon, fmt.Sprintf(format, args...))
}

// printWarning prints a warning message.
func printWarning(w io.Writer, format string, args ...interface{}) {
	fmt.Fprintf(w, "%s %s\n", warningIcon, fmt.Sprintf(format, args...))
}

// printInfo prints an info line.
func printInfo(w io.Writer, label, value string) {
	fmt.Fprintf(w, "  %s: %s\n", dim(label), value)
}
