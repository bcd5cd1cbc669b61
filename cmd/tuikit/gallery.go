package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tuikit/internal/combobox"
	"github.com/alexisbeaulieu97/tuikit/internal/infrastructure/events"
	"github.com/alexisbeaulieu97/tuikit/internal/ports"
	"github.com/alexisbeaulieu97/tuikit/internal/sources"
	"github.com/alexisbeaulieu97/tuikit/internal/tui/gallery"
)

func newGalleryCmd(flags *rootFlags) *cobra.Command {
	var printSelected bool

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Launch the interactive widget gallery",
		Long:  `Launch a card hosting a combobox whose results come from the configured sources.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGalleryCommand(cmd, flags, printSelected)
		},
	}
	cmd.Flags().BoolVar(&printSelected, "print", false, "Print the last selected value to stdout on exit; the UI is drawn on stderr")

	return cmd
}

func runGalleryCommand(cmd *cobra.Command, flags *rootFlags, printSelected bool) error {
	screen := os.Stdout
	if printSelected {
		screen = os.Stderr
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(screen.Fd())) {
		return newCommandError("launch gallery", "checking the terminal", fmt.Errorf("%s is not a terminal", screen.Name()), "Use 'tuikit render' for non-interactive output.")
	}

	app, err := newAppContext(flags, cmd.ErrOrStderr(), true)
	if err != nil {
		return err
	}
	defer app.Close()

	ctx, logger := app.CommandContext(cmd, "command.gallery")
	logger.Info(ctx, "launching gallery")
	selected, err := runGallery(ctx, app, logger, screen)
	if err != nil {
		logger.Error(ctx, "gallery command failed", "error", err)
		return err
	}
	logger.Info(ctx, "gallery closed", "selected", selected)
	if printSelected && selected != "" {
		fmt.Fprintln(cmd.OutOrStdout(), selected)
	}
	return nil
}

// runGallery runs the interactive program and returns the last selected
// value.
func runGallery(ctx context.Context, app *AppContext, logger ports.Logger, screen io.Writer) (string, error) {
	src, err := app.Config.OpenSources()
	if err != nil {
		return "", newCommandError("launch gallery", "opening result sources", err, "Check the sources section of your configuration.")
	}

	store, err := app.openHistory()
	if err != nil {
		// History only reorders results; run without it.
		logger.Warn(ctx, "history unavailable", "error", err)
		store = nil
	}

	publisher := events.NewPublisher(logger)
	var selected string
	sub := publisher.Subscribe(ports.EventResultSelected, func(_ context.Context, event ports.Event) error {
		selected, _ = event.Fields["value"].(string)
		return nil
	})
	defer sub.Unsubscribe()

	opts := galleryOptions(ctx, app, src, logger)
	opts.History = store
	opts.Events = publisher
	m := gallery.New(opts)

	p := tea.NewProgram(m, tea.WithOutput(screen), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("failed to run gallery: %w", err)
	}
	return selected, nil
}

// galleryOptions maps the configuration onto the gallery model.
func galleryOptions(ctx context.Context, app *AppContext, src sources.Source, logger ports.Logger) gallery.Options {
	cb := app.Config.ComboBox
	return gallery.Options{
		Context: ctx,
		Source:  src,
		Bundle:  app.Bundle,
		Theme:   app.Theme,
		Logger:  logger,
		Width:   app.Config.Width,
		MaxRows: cb.MaxRows,
		Limit:   cb.Limit,
		Props: combobox.Props[sources.Item]{
			Label:       cb.Label,
			HelperText:  cb.HelperText,
			Placeholder: cb.Placeholder,
			Required:    cb.Required,
			Clearable:   cb.Clearable,
			OpenOnFocus: cb.OpenOnFocus,
		},
	}
}
