package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/veneer-ui/veneer/internal/config"
)

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <theme-file>",
		Short: "Validate a theme file without loading it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			theme, err := config.ParseTheme(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %q with %d colour families\n",
				args[0], theme.Name, len(theme.Palette.Families))
			return nil
		},
	}

	return cmd
}
