package main

import (
	"github.com/spf13/cobra"

	"github.com/veneer-ui/veneer/internal/logger"
)

type rootFlags struct {
	theme   string
	verbose bool
}

func newRootCmd(log *logger.Logger) *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "veneer",
		Short:         "Veneer resolves design tokens into cached terminal styles",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the gallery
			if len(args) == 0 {
				return runPreview(flags, log)
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.theme, "theme", "t", "", "Path to a theme file (defaults to the built-in theme)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newPreviewCmd(flags, log))
	cmd.AddCommand(newTokensCmd(flags, log))
	cmd.AddCommand(newValidateCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
