package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/pakr/internal/core/domain"
)

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Validate the configuration and print the resolved commands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return err
			}

			cfg, err := c.app.Load(configPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "configuration OK: %d define(s), %d command(s)\n", len(cfg.Defines), len(cfg.Commands))
			for i, command := range cfg.Commands {
				fmt.Fprintf(out, "  %d. %s\n", i+1, describeCommand(command))
			}
			return nil
		},
	}
}

func describeCommand(cmd domain.Command) string {
	switch cmd.Kind {
	case domain.KindCopy:
		return fmt.Sprintf("copy %s -> %s", cmd.Copy.Source, cmd.Copy.Destination)
	case domain.KindReplace:
		return fmt.Sprintf("replace %q in %s", cmd.Replace.Pattern, cmd.Replace.Source)
	case domain.KindRun:
		return fmt.Sprintf("run %s", cmd.Run.Command)
	default:
		return string(cmd.Kind)
	}
}
