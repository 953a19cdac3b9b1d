package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/veneer-ui/veneer/internal/engine"
	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/shade"
)

func newTokensCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens",
		Short: "Print the resolved token table for a theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(flags.theme, flags.verbose, log)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			store := app.store

			fmt.Fprintf(out, "theme: %s (v%s)\n\n", app.theme.Name, app.theme.Version)

			fmt.Fprintln(out, "colour families:")
			for _, family := range store.FamilyNames() {
				scale, err := store.ColorFamily(family)
				if err != nil {
					return err
				}
				swatches := make([]string, 0, len(shade.Names()))
				for _, sh := range shade.Names() {
					hex, err := scale.Get(sh)
					if err != nil {
						return err
					}
					rendered, renderErr := app.factory.Text(" "+hex+" ", engine.TextParams{
						FgColor:  "WHITE",
						BgFamily: family,
						BgShade:  sh,
						Size:     "SMALL",
					})
					if renderErr != nil {
						rendered = hex
					}
					swatches = append(swatches, fmt.Sprintf("%s=%s", sh, rendered))
				}
				fmt.Fprintf(out, "  %-10s %s\n", family, strings.Join(swatches, " "))
			}

			fmt.Fprintln(out, "\nfont sizes:")
			for _, name := range store.SizeNames() {
				spec, err := store.FontSpec(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-8s %s\n", name, spec)
			}

			fmt.Fprintln(out, "\nspacing:")
			for _, name := range store.SpacingNames() {
				px, err := store.Spacing(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-4s %dpx\n", name, px)
			}

			fmt.Fprintln(out, "\nborders:")
			for _, name := range store.BorderNames() {
				px, err := store.BorderWeight(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-7s %dpx\n", name, px)
			}

			fmt.Fprintln(out, "\ntext colours:")
			for _, name := range store.TextColorNames() {
				hex, err := store.TextColor(name)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "  %-10s %s\n", name, hex)
			}

			return nil
		},
	}

	return cmd
}
