package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
	"github.com/HartBrook/promptpress/internal/language"
	"github.com/HartBrook/promptpress/internal/structure"
)

type optimizeOptions struct {
	input  inputOptions
	size   string
	lang   string
	json   bool
	output string
}

// NewOptimizeCmd creates the optimize command.
func NewOptimizeCmd(g *globalOptions) *cobra.Command {
	opts := &optimizeOptions{}

	cmd := &cobra.Command{
		Use:   "optimize [file|-]",
		Short: "Complete a prompt and add the sections its target length needs",
		Long: `Completes and enriches a prompt without calling any model.

The pass:
1. Repairs a truncated ending (open heading, cut-off list item, missing period)
2. Fills empty Role, Objective, Instructions, Format and Constraints sections
3. Adds Examples, Workflow and Considerations for very_long, Methodology for long
4. Fills any heading still left without a body

The language is detected unless --lang is given. This is not the inverse
of compress.`,
		Example: `  promptpress optimize draft.md
  promptpress optimize draft.md --size very_long
  promptpress optimize draft.md --lang en -o prompt.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOptimize(cmd, args, g, opts)
		},
	}

	opts.input.addFlags(cmd)
	cmd.Flags().StringVar(&opts.size, "size", "", "Target size: short, medium, long or very_long (default from config)")
	cmd.Flags().StringVar(&opts.lang, "lang", "", "Force the output language: fr, en or ar")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the result as JSON")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to file")

	return cmd
}

func runOptimize(cmd *cobra.Command, args []string, g *globalOptions, opts *optimizeOptions) error {
	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sizeName := opts.size
	if sizeName == "" {
		sizeName = cfg.Optimize.SizeClass
	}
	size, err := structure.ParseSizeClass(sizeName)
	if err != nil {
		return errors.InvalidSizeClass(err)
	}

	langName := opts.lang
	if langName == "" {
		langName = cfg.Optimize.Language
	}
	lang, err := language.Parse(langName)
	if err != nil {
		return errors.InvalidLanguage(err)
	}

	text, source, err := g.readPrompt(cmd, args, &opts.input, logger)
	if err != nil {
		return err
	}

	result := structure.Optimize(text, size, lang)
	logger.Info("optimized prompt",
		zap.String("source", source),
		zap.String("size", string(size)),
		zap.String("language", language.GetDisplayName(result.Language)),
		zap.Int("improvements", len(result.Improvements)),
	)

	if opts.json || cfg.Output.Format == config.FormatJSON {
		return writeJSON(cmd, opts.output, result)
	}

	if err := writeOutput(cmd, opts.output, result.Optimized); err != nil {
		return err
	}
	w := cmd.ErrOrStderr()
	if len(result.Improvements) == 0 {
		printSuccess(w, "Prompt is already complete")
		return nil
	}
	for _, imp := range result.Improvements {
		printSuccess(w, "%s", imp)
	}
	return nil
}
