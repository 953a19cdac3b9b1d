package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/veneer-ui/veneer/internal/logger"
	"github.com/veneer-ui/veneer/internal/tui/gallery"
)

func newPreviewCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Launch the interactive style gallery",
		Long:  `Launch the interactive TUI gallery showing every widget category rendered with the loaded theme.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPreview(flags, log)
		},
	}

	return cmd
}

func runPreview(flags *rootFlags, log *logger.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("preview requires an interactive terminal")
	}

	app, err := newAppContext(flags.theme, flags.verbose, log)
	if err != nil {
		return err
	}

	m := gallery.NewModel(app.factory)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	stats := app.factory.Engine().CacheStats()
	log.WithFields(map[string]any{
		"styles": stats.Entries,
		"hits":   stats.Hits,
		"misses": stats.Misses,
	}).Info("gallery closed")

	return nil
}
