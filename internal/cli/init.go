package cli

import (
	"github.com/spf13/cobra"

	"github.com/HartBrook/promptpress/internal/config"
)

type initOptions struct {
	force bool
}

// NewInitCmd creates the init command.
func NewInitCmd(g *globalOptions) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration file",
		Long: `Writes ~/.config/promptpress/config.yaml with every setting at its
default. Set PROMPTPRESS_CONFIG or --config to write somewhere else.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, g, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing config file")

	return cmd
}

func runInit(cmd *cobra.Command, g *globalOptions, opts *initOptions) error {
	path := g.path()
	w := cmd.OutOrStdout()

	if config.Exists(path) && !opts.force {
		printWarning(w, "Config already exists at %s", path)
		printInfo(w, "Hint", "use --force to overwrite it")
		return nil
	}

	if err := config.SaveTo(config.Default(), path); err != nil {
		return err
	}
	printSuccess(w, "Created %s", info(path))
	return nil
}
