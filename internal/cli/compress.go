package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HartBrook/promptpress/internal/compress"
	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
)

type compressOptions struct {
	input    inputOptions
	target   int
	json     bool
	validate bool
	output   string
}

// compressReport is the JSON shape of a compress run.
type compressReport struct {
	compress.Result
	Validation *compress.Verdict `json:"validation,omitempty"`
}

// NewCompressCmd creates the compress command.
func NewCompressCmd(g *globalOptions) *cobra.Command {
	opts := &compressOptions{}

	cmd := &cobra.Command{
		Use:   "compress [file|-]",
		Short: "Compress a prompt into a dense tagged instruction",
		Long: `Compresses a verbose prompt with deterministic pattern passes.

The pipeline:
1. Extracts metadata tags (language, style, format, features)
2. Preserves numeric and format constraints
3. Fuses redundant phrasing and normalizes verbs
4. Keeps the core instruction from the first action verb on

With --target the result is shrunk once more to the action clause when it
is still over budget. Reads stdin when no file is given.`,
		Example: `  promptpress compress prompt.txt             # Compress a file
  cat prompt.txt | promptpress compress       # Compress stdin
  promptpress compress prompt.txt --target 40 # Aim for ~40 tokens
  promptpress compress prompt.txt --validate  # Check quality thresholds
  promptpress compress --repo acme/prompts --path review.md --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompress(cmd, args, g, opts)
		},
	}

	opts.input.addFlags(cmd)
	cmd.Flags().IntVar(&opts.target, "target", 0, "Target token count (0 = config value, or no budget)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the full result as JSON")
	cmd.Flags().BoolVar(&opts.validate, "validate", false, "Validate the result against quality thresholds")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write output to file")

	return cmd
}

func runCompress(cmd *cobra.Command, args []string, g *globalOptions, opts *compressOptions) error {
	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	text, source, err := g.readPrompt(cmd, args, &opts.input, logger)
	if err != nil {
		return err
	}

	target := opts.target
	if !cmd.Flags().Changed("target") {
		target = cfg.Compress.TargetTokens
	}
	if target < 0 {
		return errors.New(errors.ErrConfigInvalid, "--target must not be negative", "")
	}

	result := runPipeline(text, target, logger)
	logger.Info("compressed prompt",
		zap.String("source", source),
		zap.Int("original_tokens", result.OriginalTokens),
		zap.Int("compressed_tokens", result.CompressedTokens),
		zap.Int("reduction_rate_percent", result.ReductionRate),
	)

	var verdict *compress.Verdict
	if opts.validate {
		v := compress.Validate(result)
		verdict = &v
	}

	if opts.json || cfg.Output.Format == config.FormatJSON {
		if err := writeJSON(cmd, opts.output, compressReport{Result: result, Validation: verdict}); err != nil {
			return err
		}
	} else {
		if err := writeOutput(cmd, opts.output, result.Compressed); err != nil {
			return err
		}
		printStats(cmd, result)
		if verdict != nil {
			printVerdict(cmd, *verdict)
		}
	}

	if verdict != nil && !verdict.Valid && cfg.Compress.Strict {
		return errors.ValidationFailed(verdict.Issues)
	}
	return nil
}

// runPipeline compresses text, logging each stage at debug level.
func runPipeline(text string, target int, logger *zap.Logger) compress.Result {
	trace := compress.Explain(text)
	logger.Debug("metadata", zap.Strings("tags", trace.Metadata.Tags()))
	logger.Debug("constraints", zap.Strings("preserved", trace.Constraints))
	logger.Debug("fused", zap.String("text", trace.Fused))
	logger.Debug("core", zap.String("text", trace.Core))

	if target <= 0 {
		return trace.Result
	}
	result := compress.CompressToTarget(text, target)
	if result.CompressedTokens > target {
		logger.Warn("over token budget",
			zap.Int("target", target),
			zap.Int("compressed_tokens", result.CompressedTokens),
		)
	}
	return result
}

func printStats(cmd *cobra.Command, result compress.Result) {
	w := cmd.ErrOrStderr()
	stats := result.TokenStats()
	fmt.Fprintln(w)
	printInfo(w, "Tokens", fmt.Sprintf("%d → %d (%s saved, %.1f%%)",
		stats.Before, stats.After, info(stats.Saved()), stats.PercentReduction()))
	if len(result.MetadataTags) > 0 {
		printInfo(w, "Tags", fmt.Sprintf("%v", result.MetadataTags))
	}
	for _, c := range result.PreservedConstraints {
		printInfo(w, "Constraint", c)
	}
}

func printVerdict(cmd *cobra.Command, v compress.Verdict) {
	w := cmd.ErrOrStderr()
	if v.Valid {
		printSuccess(w, "Compression is %s", success("valid"))
		return
	}
	for _, issue := range v.Issues {
		printWarning(w, "%s", warning(issue))
	}
}
