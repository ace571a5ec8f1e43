package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/HartBrook/promptpress/internal/compress"
	"github.com/HartBrook/promptpress/internal/config"
	"github.com/HartBrook/promptpress/internal/errors"
)

type validateOptions struct {
	input  inputOptions
	strict bool
	json   bool
}

// validateReport is the JSON shape of a validate run.
type validateReport struct {
	compress.Verdict
	Compressed       string `json:"compressed"`
	ReductionRate    int    `json:"reduction_rate_percent"`
	CompressedTokens int    `json:"compressed_tokens"`
}

// NewValidateCmd creates the validate command.
func NewValidateCmd(g *globalOptions) *cobra.Command {
	opts := &validateOptions{}

	cmd := &cobra.Command{
		Use:   "validate [file|-]",
		Short: "Compress a prompt and check the result against quality thresholds",
		Long: `Compresses a prompt and reports every quality issue found:

- reduction below 30% or above 60%
- fewer than 10 tokens left
- no action verb left in the compressed text

With --strict (or compress.strict in config) any issue fails the command.`,
		Example: `  promptpress validate prompt.txt
  promptpress validate prompt.txt --strict
  cat prompt.txt | promptpress validate --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, g, opts)
		},
	}

	opts.input.addFlags(cmd)
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "Exit non-zero when any issue is found")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Print the verdict as JSON")

	return cmd
}

func runValidate(cmd *cobra.Command, args []string, g *globalOptions, opts *validateOptions) error {
	cfg, logger, err := g.setup(cmd)
	if err != nil {
		return err
	}
	defer logger.Sync()

	text, _, err := g.readPrompt(cmd, args, &opts.input, logger)
	if err != nil {
		return err
	}

	result := runPipeline(text, cfg.Compress.TargetTokens, logger)
	verdict := compress.Validate(result)
	logger.Debug("validated", zap.Bool("valid", verdict.Valid), zap.Strings("issues", verdict.Issues))

	if opts.json || cfg.Output.Format == config.FormatJSON {
		report := validateReport{
			Verdict:          verdict,
			Compressed:       result.Compressed,
			ReductionRate:    result.ReductionRate,
			CompressedTokens: result.CompressedTokens,
		}
		if err := writeJSON(cmd, "", report); err != nil {
			return err
		}
	} else {
		printVerdict(cmd, verdict)
	}

	strict := opts.strict
	if !cmd.Flags().Changed("strict") {
		strict = cfg.Compress.Strict
	}
	if strict && !verdict.Valid {
		return errors.ValidationFailed(verdict.Issues)
	}
	return nil
}
