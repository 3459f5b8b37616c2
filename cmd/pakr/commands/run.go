package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Execute the commands declared in the configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			// Loading happens against the path as given; relative paths
			// inside the configuration resolve against the working
			// directory selected below.
			cfg, err := c.app.Load(configPath)
			if err != nil {
				return err
			}

			workdir, err := cmd.Flags().GetString("workdir")
			if err != nil {
				return err
			}
			if workdir == "" {
				workdir = filepath.Dir(configPath)
			}
			if err := os.Chdir(workdir); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to change working directory"), "workdir", workdir)
			}

			return c.app.Execute(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringP("workdir", "w", "", "Directory to execute commands in (defaults to the configuration's directory)")

	return cmd
}
